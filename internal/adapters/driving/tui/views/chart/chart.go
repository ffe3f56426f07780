// Package chart provides the scrollable chart view for the TUI.
package chart

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtree-project/gtree/internal/adapters/driving/tui/messages"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/styles"
)

// View shows an ancestor or descendant chart in a scrollable viewport.
type View struct {
	styles    *styles.Styles
	viewport  viewport.Model
	rootID    string
	ancestors bool
	ready     bool
}

// NewView creates a new chart view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
	}
}

// Init initialises the chart view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the chart view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewPersons}
			}
		case "a":
			// Toggle between ancestor and descendant charts.
			if v.rootID != "" {
				id := v.rootID
				ancestors := !v.ancestors
				return v, func() tea.Msg {
					return messages.ChartRequested{ID: id, Ancestors: ancestors}
				}
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the chart.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("No chart")
	}

	title := "Descendants"
	if v.ancestors {
		title = "Ancestors"
	}
	header := v.styles.Subtitle.Render(title)
	footer := v.styles.Muted.Render("[a] toggle ancestors  [j/k] scroll  [esc] back")
	return header + "\n" + v.viewport.View() + "\n" + footer
}

// SetChart sets the chart text to display.
func (v *View) SetChart(rootID string, ancestors bool, chart string) {
	v.rootID = rootID
	v.ancestors = ancestors
	v.viewport.SetContent(chart)
	v.viewport.GotoTop()
	v.ready = true
}

// RootID returns the id of the chart's root person.
func (v *View) RootID() string {
	return v.rootID
}

// Ancestors reports whether the ancestor chart is shown.
func (v *View) Ancestors() bool {
	return v.ancestors
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height - 3
}
