// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import "github.com/gtree-project/gtree/internal/core/ports/driving"

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewPersons is the navigable person list.
	ViewPersons
	// ViewProfile shows one person's profile card.
	ViewProfile
	// ViewChart shows an ancestor or descendant chart.
	ViewChart
	// ViewIssues shows validation findings.
	ViewIssues
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewPersons:
		return "persons"
	case ViewProfile:
		return "profile"
	case ViewChart:
		return "chart"
	case ViewIssues:
		return "issues"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// PersonSelected signals a person was chosen from the list.
type PersonSelected struct {
	ID string
}

// ChartRequested asks for a chart rooted at a person.
type ChartRequested struct {
	ID        string
	Ancestors bool
}

// FileChanged signals the tree file was modified on disk.
type FileChanged struct{}

// TreeReloaded carries the outcome of reloading the tree file. The new
// query service rides in the message so the model is only mutated on the
// update loop, never from the command goroutine.
type TreeReloaded struct {
	Query driving.QueryService
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
