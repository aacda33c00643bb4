package tui

import (
	"strings"

	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type copiedMsg struct {
	err error
}

// textPromptModel asks a single-line question. When the prompt carries
// CopyText, ctrl+y puts it on the clipboard.
type textPromptModel struct {
	prompt models.TextPrompt
	input  textinput.Model
	copyFn func(string) error

	status    string
	submitted bool
	aborted   bool
}

func newTextPromptModel(prompt models.TextPrompt, copyFn func(string) error) textPromptModel {
	input := textinput.New()
	input.Placeholder = prompt.Placeholder
	input.CharLimit = 512
	input.Width = 60
	if prompt.Secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.SetValue(prompt.Initial)
	input.CursorEnd()
	input.Focus()

	return textPromptModel{prompt: prompt, input: input, copyFn: copyFn}
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if copied, ok := msg.(copiedMsg); ok {
		if copied.err != nil {
			m.status = "Could not copy: " + copied.err.Error()
		} else {
			m.status = "Link copied to the clipboard."
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.copy):
			if m.prompt.CopyText == "" || m.copyFn == nil {
				return m, nil
			}
			return m, m.cmdCopy(m.prompt.CopyText)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	if m.submitted || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.prompt.Hint != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.prompt.Hint))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	help := "enter confirm │ esc cancel"
	if m.prompt.CopyText != "" {
		help = "enter confirm │ ctrl+y copy link │ esc cancel"
	}
	return renderPage(m.prompt.Title, b.String(), help)
}

// Value returns the answer as typed.
func (m textPromptModel) Value() string {
	return m.input.Value()
}

func (m textPromptModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}
