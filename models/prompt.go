package models

// Choice is one option offered by an interactive picker.
type Choice struct {
	Title       string
	Description string
	Hint        string
}

// TextPrompt describes a single-line text question.
type TextPrompt struct {
	// Title is the question shown above the input.
	Title string
	// Placeholder is shown while the input is empty.
	Placeholder string
	// Initial pre-fills the input.
	Initial string
	// Hint is an additional line under the input (validation messages etc.).
	Hint string
	// Secret hides the typed characters.
	Secret bool
	// CopyText, when set, can be copied to the clipboard from the prompt.
	CopyText string
}

// ChoicesFromCatalog converts catalog items into picker options, preserving order.
func ChoicesFromCatalog(items []CatalogItem) []Choice {
	choices := make([]Choice, 0, len(items))
	for _, item := range items {
		choices = append(choices, Choice{
			Title:       item.DisplayTitle(),
			Description: item.Description,
			Hint:        item.PriceLabel(),
		})
	}
	return choices
}
