// Package bubbletea provides a terminal UI theme previewer using the Bubble
// Tea framework.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/svgtheme"
)

// Model is the Bubble Tea model for previewing a theme.
type Model struct {
	theme    svgtheme.Theme
	viewport viewport.Model
	ready    bool
	content  string
}

// NewModel creates a new Model showing the theme rendered by the given
// renderer.
func NewModel(theme svgtheme.Theme, renderer svgtheme.Renderer) Model {
	return Model{
		theme:   theme,
		content: renderer.Render(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View()
}

// Viewer implements svgtheme.Viewer using a Bubble Tea TUI.
type Viewer struct {
	renderer svgtheme.Renderer
}

// NewViewer creates a new Viewer that renders themes with the given
// renderer.
func NewViewer(renderer svgtheme.Renderer) *Viewer {
	return &Viewer{renderer: renderer}
}

// View displays the theme and blocks until the user exits.
func (v *Viewer) View(_ context.Context, theme svgtheme.Theme) error {
	m := NewModel(theme, v.renderer)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
