// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/service"
	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var _ service.Prompter = (*TUI)(nil)

// TUI is the terminal implementation of [service.Prompter]. Each question
// runs its own short-lived Bubble Tea program inline, without the alternate
// screen, so the answers stay in the scrollback.
type TUI struct {
	in  io.Reader
	out io.Writer

	copyFn func(string) error
	logger *logger.Logger
}

// Option customises a [TUI].
type Option func(*TUI)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TUI) {
		t.in = in
		t.out = out
	}
}

// New creates a TUI writing to stdout and copying through the system clipboard.
func New(log *logger.Logger, opts ...Option) *TUI {
	t := &TUI{
		out:    os.Stdout,
		copyFn: clipboard.WriteAll,
		logger: log,
	}
	if t.logger == nil {
		t.logger = logger.Nop()
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Choose implements [service.Prompter].
func (t *TUI) Choose(ctx context.Context, title string, choices []models.Choice) (int, error) {
	final, err := t.run(ctx, newPickerModel(title, choices))
	if err != nil {
		return -1, err
	}

	result, ok := final.(pickerModel)
	if !ok {
		return -1, tea.ErrProgramKilled
	}
	if result.aborted || result.chosen < 0 {
		return -1, service.ErrUserAborted
	}

	t.echo(title, choices[result.chosen].Title)
	return result.chosen, nil
}

// PromptText implements [service.Prompter].
func (t *TUI) PromptText(ctx context.Context, prompt models.TextPrompt) (string, error) {
	final, err := t.run(ctx, newTextPromptModel(prompt, t.copyFn))
	if err != nil {
		return "", err
	}

	result, ok := final.(textPromptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.aborted || !result.submitted {
		return "", service.ErrUserAborted
	}

	if !prompt.Secret {
		t.echo(prompt.Title, result.Value())
	}
	return result.Value(), nil
}

// Confirm implements [service.Prompter].
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(question))
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.aborted || !result.answered {
		return false, service.ErrUserAborted
	}

	answer := "no"
	if result.answer {
		answer = "yes"
	}
	t.echo(question, answer)
	return result.answer, nil
}

// Notify implements [service.Prompter].
func (t *TUI) Notify(_ context.Context, msg string) {
	fmt.Fprintln(t.out, noticeStyle.Render(msg))
}

// ShowError prints err in a user-facing form.
func (t *TUI) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(t.out, errorStyle.Render("Error: "+humanizeError(err)))
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(t.out)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		t.logger.Debug().Err(err).Msg("prompt program failed")
		return nil, fmt.Errorf("run prompt: %w", err)
	}

	return final, nil
}

// echo leaves the answered question in the terminal once the program is gone.
func (t *TUI) echo(question, answer string) {
	fmt.Fprintf(t.out, "%s %s\n", titleStyle.Render(lastLine(question)), hintStyle.Render(answer))
}
