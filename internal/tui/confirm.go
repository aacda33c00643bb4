package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question. Enter alone answers no.
type confirmModel struct {
	question string

	answer   bool
	answered bool
	aborted  bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.yes):
		m.answer, m.answered = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.enter):
		m.answer, m.answered = false, true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered || m.aborted {
		return ""
	}
	return renderPage(m.question, "", "y yes │ n no (default) │ esc cancel")
}
