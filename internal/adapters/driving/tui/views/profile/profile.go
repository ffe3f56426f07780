// Package profile provides the person profile view for the TUI.
package profile

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtree-project/gtree/internal/adapters/driving/tui/messages"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/styles"
)

// View shows one person's profile card in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	personID string
	ready    bool
}

// NewView creates a new profile view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
	}
}

// Init initialises the profile view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the profile view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewPersons}
			}
		case "t", "a":
			if v.personID != "" {
				id := v.personID
				ancestors := msg.String() == "a"
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

// View renders the profile.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("No person selected")
	}
	footer := v.styles.Muted.Render("[t] tree  [a] ancestors  [esc] back")
	return v.viewport.View() + "\n" + footer
}

// SetProfile sets the rendered profile card to display.
func (v *View) SetProfile(personID, card string) {
	v.personID = personID
	v.viewport.SetContent(card)
	v.viewport.GotoTop()
	v.ready = true
}

// PersonID returns the id of the displayed person.
func (v *View) PersonID() string {
	return v.personID
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height - 2
}
