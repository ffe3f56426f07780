package render

import (
	"fmt"
	"strings"

	"github.com/gtree-project/gtree/internal/core/domain"
)

// Table renders persons as an aligned listing, one row each, the way
// the original program's list command printed its matches.
func (r *Renderer) Table(persons []domain.Person) string {
	if len(persons) == 0 {
		return "no matches\n"
	}

	const rowFmt = "%-6s %-18s %-18s %-12s %-12s %-8s\n"

	var b strings.Builder
	b.WriteString(r.styles.Header.Render(strings.TrimRight(
		fmt.Sprintf(rowFmt, "ID", "Given name", "Surname", "Birth", "Death", "Sex"), "\n")) + "\n")

	for _, p := range persons {
		sex := ""
		if p.Sex != domain.SexUnknown && p.Sex != "" {
			sex = string(p.Sex)
		}
		fmt.Fprintf(&b, rowFmt,
			p.ID, p.GivenName, p.Surname,
			p.Birth.String(), p.Death.String(), sex)
	}
	return b.String()
}
