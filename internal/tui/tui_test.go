package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/service"
	"github.com/MKhiriev/kenv-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update[M tea.Model](t *testing.T, m M, msgs ...tea.Msg) (M, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(M)
		require.True(t, ok)
	}
	return m, cmd
}

// ── picker ────────────────────────────────────────────────────────────────────

func testChoices() []models.Choice {
	return []models.Choice{
		{Title: "Foo kit", Description: "free scripts\nsecond line", Hint: "free"},
		{Title: "Bar kit", Hint: "10"},
		{Title: "Baz kit", Hint: "free"},
	}
}

func TestPicker_MovesAndSelects(t *testing.T) {
	m := newPickerModel("Pick one", testChoices())

	m, cmd := update(t, m, keyPress("down"), keyPress("down"), keyPress("enter"))

	assert.Equal(t, 2, m.chosen)
	assert.False(t, m.aborted)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPicker_Wraps(t *testing.T) {
	m := newPickerModel("Pick one", testChoices())

	m, _ = update(t, m, keyPress("up"))
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, keyPress("j"))
	assert.Equal(t, 0, m.cursor)
}

func TestPicker_Abort(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, cmd := update(t, newPickerModel("Pick one", testChoices()), keyPress(k))

			assert.True(t, m.aborted)
			assert.Equal(t, -1, m.chosen)
			require.NotNil(t, cmd)
		})
	}
}

func TestPicker_View(t *testing.T) {
	view := newPickerModel("Pick one", testChoices()).View()

	assert.Contains(t, view, "Pick one")
	assert.Contains(t, view, "Foo kit")
	assert.Contains(t, view, "(free)")
	assert.Contains(t, view, "(10)")
	assert.Contains(t, view, "free scripts")
	assert.NotContains(t, view, "second line")
}

// ── text prompt ───────────────────────────────────────────────────────────────

func TestTextPrompt_TypeAndSubmit(t *testing.T) {
	m := newTextPromptModel(models.TextPrompt{Title: "License key"}, nil)

	m, cmd := update(t, m, keyPress("ABC"), keyPress("1"), keyPress("enter"))

	assert.True(t, m.submitted)
	assert.Equal(t, "ABC1", m.Value())
	require.NotNil(t, cmd)
}

func TestTextPrompt_Initial(t *testing.T) {
	m := newTextPromptModel(models.TextPrompt{Title: "Folder", Initial: "/home/u/Downloads/"}, nil)

	m, _ = update(t, m, keyPress("kit"))

	assert.Equal(t, "/home/u/Downloads/kit", m.Value())
}

func TestTextPrompt_Abort(t *testing.T) {
	m, _ := update(t, newTextPromptModel(models.TextPrompt{Title: "x"}, nil), keyPress("esc"))

	assert.True(t, m.aborted)
	assert.False(t, m.submitted)
}

func TestTextPrompt_CopyLink(t *testing.T) {
	var copied string
	copyFn := func(s string) error {
		copied = s
		return nil
	}
	m := newTextPromptModel(models.TextPrompt{Title: "key", CopyText: "https://vendor/buy"}, copyFn)

	m, cmd := update(t, m, keyPress("ctrl+y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "https://vendor/buy", copied)
	assert.Contains(t, m.View(), "Link copied")
	assert.Empty(t, m.Value())
}

func TestTextPrompt_CopyFailure(t *testing.T) {
	m := newTextPromptModel(models.TextPrompt{Title: "key", CopyText: "https://vendor/buy"},
		func(string) error { return errors.New("no clipboard") })

	m, cmd := update(t, m, keyPress("ctrl+y"))
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.View(), "no clipboard")
}

func TestTextPrompt_CopyWithoutText(t *testing.T) {
	called := false
	m := newTextPromptModel(models.TextPrompt{Title: "email"}, func(string) error {
		called = true
		return nil
	})

	_, cmd := update(t, m, keyPress("ctrl+y"))

	assert.Nil(t, cmd)
	assert.False(t, called)
}

func TestTextPrompt_View(t *testing.T) {
	m := newTextPromptModel(models.TextPrompt{
		Title:    "Enter your license key for Bar",
		Hint:     "Buy one at https://vendor/buy",
		CopyText: "https://vendor/buy",
	}, nil)

	view := m.View()

	assert.Contains(t, view, "Enter your license key for Bar")
	assert.Contains(t, view, "Buy one at https://vendor/buy")
	assert.Contains(t, view, "ctrl+y")
}

// ── confirm ───────────────────────────────────────────────────────────────────

func TestConfirm(t *testing.T) {
	tests := []struct {
		key         string
		wantAnswer  bool
		wantAborted bool
	}{
		{key: "y", wantAnswer: true},
		{key: "Y", wantAnswer: true},
		{key: "n"},
		{key: "enter"},
		{key: "esc", wantAborted: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, cmd := update(t, newConfirmModel("Replace it?"), keyPress(tt.key))

			assert.Equal(t, tt.wantAnswer, m.answer)
			assert.Equal(t, tt.wantAborted, m.aborted)
			assert.Equal(t, !tt.wantAborted, m.answered)
			require.NotNil(t, cmd)
		})
	}
}

func TestConfirm_IgnoresOtherKeys(t *testing.T) {
	m, cmd := update(t, newConfirmModel("Replace it?"), keyPress("x"))

	assert.False(t, m.answered)
	assert.Nil(t, cmd)
}

// ── output ────────────────────────────────────────────────────────────────────

func TestTUI_NotifyAndShowError(t *testing.T) {
	var out bytes.Buffer
	ui := New(nil, WithIO(nil, &out))

	ui.Notify(context.Background(), "Error report sent.")
	ui.ShowError(fmt.Errorf("fetch catalog: %w", service.ErrVendorRejected))
	ui.ShowError(nil)

	assert.Contains(t, out.String(), "Error report sent.")
	assert.Contains(t, out.String(), "rejected this client")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "missing secret", err: config.ErrMissingSecret, want: "No vendor secret configured. Pass --secret or set KENV_APP_SECRET."},
		{name: "dial", err: errors.New("Get \"https://x\": dial tcp: lookup x: no such host"), want: "No network connection or the vendor API is unreachable."},
		{name: "timeout", err: fmt.Errorf("download: %w", context.DeadlineExceeded), want: "No network connection or the vendor API is unreachable."},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
