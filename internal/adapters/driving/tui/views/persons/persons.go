// Package persons provides the navigable person list view for the TUI.
package persons

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtree-project/gtree/internal/adapters/driving/tui/messages"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/styles"
	"github.com/gtree-project/gtree/internal/core/domain"
)

// View displays every person in the tree as a navigable list.
type View struct {
	styles   *styles.Styles
	persons  []domain.Person
	selected int
	width    int
	height   int
}

// NewView creates a new person list view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the person list view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the person list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.persons)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if p := v.SelectedPerson(); p != nil {
				id := p.ID
				return v, func() tea.Msg {
					return messages.PersonSelected{ID: id}
				}
			}
			return v, nil

		case "t", "a":
			if p := v.SelectedPerson(); p != nil {
				id := p.ID
				ancestors := msg.String() == "a"
				return v, func() tea.Msg {
					return messages.ChartRequested{ID: id, Ancestors: ancestors}
				}
			}
			return v, nil

		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// View renders the person list.
func (v *View) View() string {
	if len(v.persons) == 0 {
		return v.styles.Muted.Render("No persons in this tree")
	}

	lines := make([]string, 0, len(v.persons)+2)
	lines = append(lines,
		v.styles.Subtitle.Render(fmt.Sprintf("Persons (%d)", len(v.persons))), "")

	visible := v.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := start + visible
	if end > len(v.persons) {
		end = len(v.persons)
	}

	for i := start; i < end; i++ {
		lines = append(lines, v.renderPerson(i, &v.persons[i]))
	}

	return strings.Join(lines, "\n")
}

// renderPerson formats a single list row.
func (v *View) renderPerson(index int, p *domain.Person) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	row := fmt.Sprintf("%s%-6s %s", indicator, p.ID, p.Name())
	if span := p.Lifespan(); span != "" {
		row += "  " + span
	}

	if index == v.selected {
		return v.styles.Selected.Render(row)
	}
	return v.styles.Normal.Render(row)
}

// SetPersons replaces the listed persons, keeping the selection in
// range.
func (v *View) SetPersons(persons []domain.Person) {
	v.persons = persons
	if v.selected >= len(persons) {
		v.selected = 0
	}
}

// SelectedPerson returns the currently selected person, or nil.
func (v *View) SelectedPerson() *domain.Person {
	if len(v.persons) == 0 || v.selected < 0 || v.selected >= len(v.persons) {
		return nil
	}
	return &v.persons[v.selected]
}

// Selected returns the index of the selected person.
func (v *View) Selected() int {
	return v.selected
}

// Count returns the number of listed persons.
func (v *View) Count() int {
	return len(v.persons)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
