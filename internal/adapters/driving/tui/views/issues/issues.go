// Package issues provides the validation findings view for the TUI.
package issues

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtree-project/gtree/internal/adapters/driving/tui/messages"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/styles"
)

// View shows validation findings in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	ready    bool
}

// NewView creates a new issues view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
	}
}

// Init initialises the issues view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the issues view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the findings.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("No findings")
	}
	header := v.styles.Subtitle.Render("Validation")
	footer := v.styles.Muted.Render("[j/k] scroll  [esc] back")
	return header + "\n" + v.viewport.View() + "\n" + footer
}

// SetIssues sets the rendered findings to display.
func (v *View) SetIssues(rendered string) {
	v.viewport.SetContent(rendered)
	v.viewport.GotoTop()
	v.ready = true
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height - 3
}
