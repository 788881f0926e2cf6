package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// remoteCall is a bubbletea model that runs one store call while a spinner
// and its label are on screen. It keeps the call's result once it returns.
type remoteCall struct {
	label    string
	call     func() error
	spinner  spinner.Model
	finished bool
	outcome  error
	elapsed  time.Duration
}

type remoteCallFinished struct {
	outcome error
	elapsed time.Duration
}

func newRemoteCall(ctx context.Context, label string, call func(context.Context) error) remoteCall {
	return remoteCall{
		label: label,
		call:  func() error { return call(ctx) },
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
	}
}

func (m remoteCall) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.invoke)
}

func (m remoteCall) invoke() tea.Msg {
	started := time.Now()
	outcome := m.call()
	return remoteCallFinished{outcome: outcome, elapsed: time.Since(started)}
}

func (m remoteCall) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if finished, ok := msg.(remoteCallFinished); ok {
		m.finished = true
		m.outcome = finished.outcome
		m.elapsed = finished.elapsed
		return m, tea.Quit
	}

	if m.finished {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m remoteCall) View() string {
	if m.finished {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// runRemoteCall shows a spinner on w while call runs. Structured output
// skips it so stdout and stderr stay free of terminal control codes.
func runRemoteCall(ctx context.Context, app *app, w io.Writer, label string, call func(context.Context) error) error {
	if app.output != outputText {
		return call(ctx)
	}

	finalModel, err := tea.NewProgram(
		newRemoteCall(ctx, label, call),
		tea.WithInput(nil),
		tea.WithOutput(w),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	done, ok := finalModel.(remoteCall)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	app.log.Debugw("remote call finished", "label", done.label, "elapsed", done.elapsed, "failed", done.outcome != nil)
	return done.outcome
}
