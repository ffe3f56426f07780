package render

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles shared by the
// renderers. The palette follows the original program: magenta ids,
// yellow chart lines, bold field labels, a blue band on chart roots.
type Styles struct {
	// ID styles a person id shown next to a name.
	ID lipgloss.Style

	// Header styles section headers in profiles.
	Header lipgloss.Style

	// Label styles field labels ("Birth:", "Death:").
	Label lipgloss.Style

	// Line styles the box-drawing connectors of a chart.
	Line lipgloss.Style

	// Root highlights the root entry of a chart.
	Root lipgloss.Style

	// Error styles validation errors.
	Error lipgloss.Style

	// Warning styles validation warnings.
	Warning lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		ID:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Header:  lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Bold(true),
		Line:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Root:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("4")).Foreground(lipgloss.Color("7")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// LineSet is one set of line-drawing characters for charts.
type LineSet struct {
	Pipe  string
	Tee   string
	Elbow string
	Blank string
}

// UnicodeLines is the default character set.
var UnicodeLines = LineSet{
	Pipe:  "│  ",
	Tee:   "├──",
	Elbow: "└──",
	Blank: "   ",
}

// ASCIILines is the fallback for terminals without box-drawing glyphs.
var ASCIILines = LineSet{
	Pipe:  "|  ",
	Tee:   "|--",
	Elbow: "`--",
	Blank: "   ",
}
