package render

import (
	"fmt"
	"strings"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/ports/driving"
)

// Profile renders the person card: identity fields, then the Parents,
// Children, Siblings and Spouses sections.
func (r *Renderer) Profile(q driving.QueryService, id string) (string, error) {
	p, err := q.Person(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(r.styles.Root.Render(p.Name()) + "\n")

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-12s %s\n", r.styles.Label.Render(label+":"), value)
		}
	}
	field("ID", p.ID)
	field("Birth", p.Birth.String())
	field("Death", p.Death.String())
	if p.Sex != domain.SexUnknown {
		field("Sex", string(p.Sex))
	}
	field("Notes", p.Notes)
	for _, f := range p.Unknown {
		field(f.Key, f.Value)
	}

	section := func(name string, people []domain.Person, tags map[string]string) {
		if len(people) == 0 {
			return
		}
		b.WriteString(r.styles.Header.Render(name+":") + "\n")
		for _, person := range people {
			line := "\t" + person.Name() + " " + r.styles.ID.Render("("+person.ID+")")
			if tag := tags[person.ID]; tag != "" {
				line += " [" + tag + "]"
			}
			b.WriteString(line + "\n")
		}
	}

	parents, err := q.Parents(id)
	if err != nil {
		return "", err
	}
	section("Parents", parents, nil)

	children, err := q.Children(id)
	if err != nil {
		return "", err
	}
	section("Children", children, nil)

	siblings, err := q.SiblingsOf(id)
	if err != nil {
		return "", err
	}
	var sibPersons []domain.Person
	sibTags := make(map[string]string)
	for _, s := range siblings {
		sibPersons = append(sibPersons, s.Person)
		if s.Full {
			sibTags[s.Person.ID] = "full"
		} else {
			sibTags[s.Person.ID] = "half"
		}
	}
	section("Siblings", sibPersons, sibTags)

	spouses, err := q.Spouses(id)
	if err != nil {
		return "", err
	}
	section("Spouses", spouses, nil)

	return b.String(), nil
}

// Path renders a kinship chain: each hop names the person reached and
// the edge crossed to reach them.
func (r *Renderer) Path(from *domain.Person, steps []domain.PathStep) string {
	if steps == nil {
		return "not connected\n"
	}

	arrow := "→"
	if r.ascii {
		arrow = "->"
	}

	var b strings.Builder
	b.WriteString(from.Name() + " " + r.styles.ID.Render("("+from.ID+")") + "\n")
	for _, s := range steps {
		edge := "spouse of"
		if s.Edge == domain.KindParentChild {
			edge = "blood relative of"
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			r.styles.Line.Render(arrow), edge,
			s.Person.Name(), r.styles.ID.Render("("+s.Person.ID+")"))
	}
	return b.String()
}

// Issues renders validation findings, errors before warnings.
func (r *Renderer) Issues(issues []domain.ValidationIssue) string {
	if len(issues) == 0 {
		return "no issues found\n"
	}

	var b strings.Builder
	for _, sev := range []domain.Severity{domain.SeverityError, domain.SeverityWarning} {
		for _, i := range issues {
			if i.Severity != sev {
				continue
			}
			style := r.styles.Error
			if sev == domain.SeverityWarning {
				style = r.styles.Warning
			}
			b.WriteString(style.Render(string(i.Severity)) + " " + locate(i) + i.Message + "\n")
		}
	}
	return b.String()
}

func locate(i domain.ValidationIssue) string {
	switch {
	case i.PersonID != "":
		return "person " + i.PersonID + ": "
	case i.RelationshipID != "":
		return "relationship " + i.RelationshipID + ": "
	default:
		return ""
	}
}
