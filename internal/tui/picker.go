package tui

import (
	"strings"

	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const descriptionWidth = 72

// pickerModel lets the user choose one entry of a list with the arrow keys.
type pickerModel struct {
	title   string
	choices []models.Choice

	cursor  int
	chosen  int
	aborted bool
}

func newPickerModel(title string, choices []models.Choice) pickerModel {
	return pickerModel{title: title, choices: choices, chosen: -1}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.choices) == 0 {
			return m, nil
		}
		m.chosen = m.cursor
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen >= 0 || m.aborted {
		return ""
	}

	var b strings.Builder
	for i, c := range m.choices {
		cursor, title := "  ", c.Title
		if i == m.cursor {
			cursor, title = "> ", selectedStyle.Render(c.Title)
		}
		b.WriteString(cursor + title)
		if c.Hint != "" {
			b.WriteString("  " + hintStyle.Render("("+c.Hint+")"))
		}
		b.WriteString("\n")

		if d := strings.TrimSpace(c.Description); d != "" {
			b.WriteString("    " + hintStyle.Render(fitText(firstLine(d), descriptionWidth)) + "\n")
		}
	}

	return renderPage(m.title, b.String(), "↑/↓ move │ enter select │ esc cancel")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
