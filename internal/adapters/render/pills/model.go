package pills

import (
	"errors"
	"io"

	"github.com/bnema/pillctl/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderRegistry renders the pill table with each box's schedule.
func RenderRegistry(view RegistryView, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderRegistry(view, opts, s)
	})
}

// RenderPill renders a single box and its schedule.
func RenderPill(pill domain.Pill, unsaved bool) (string, error) {
	return run(func(s styles) string {
		return renderPill(pill, unsaved, s)
	})
}

// RenderDispenser renders server info and the pills due now.
func RenderDispenser(snapshot domain.DispenserSnapshot, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderDispenser(snapshot, opts, s)
	})
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
