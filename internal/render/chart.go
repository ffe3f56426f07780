package render

import (
	"fmt"
	"strings"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/ports/driving"
)

// ChartNode is one entry of an ancestor or descendant chart: its
// display lines (name first, then indented detail fields) and its
// subtree.
type ChartNode struct {
	Lines    []string
	Children []ChartNode
}

// Renderer renders charts, profiles and tables.
type Renderer struct {
	lines  LineSet
	styles *Styles
	ascii  bool
}

// NewRenderer creates a renderer. ascii selects the ASCII line set
// for terminals without box-drawing glyphs.
func NewRenderer(ascii bool) *Renderer {
	lines := UnicodeLines
	if ascii {
		lines = ASCIILines
	}
	return &Renderer{lines: lines, styles: DefaultStyles(), ascii: ascii}
}

// AncestorChart builds the chart of id's ancestors: the person at the
// top, parents nested beneath, then grandparents, to maxDepth
// generations (0 for all).
func (r *Renderer) AncestorChart(q driving.QueryService, id string, maxDepth int) (string, error) {
	return r.chart(q, id, maxDepth, q.Parents, false)
}

// DescendantChart builds the chart of id's descendants, spouses shown
// inline on each entry as the original program did.
func (r *Renderer) DescendantChart(q driving.QueryService, id string, maxDepth int) (string, error) {
	return r.chart(q, id, maxDepth, q.Children, true)
}

func (r *Renderer) chart(
	q driving.QueryService,
	id string,
	maxDepth int,
	next func(string) ([]domain.Person, error),
	withSpouses bool,
) (string, error) {
	root, err := r.buildNode(q, id, maxDepth, 0, next, withSpouses)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	r.printNode(&b, root, true, "", true)
	return b.String(), nil
}

// buildNode assembles one chart entry and recurses into its adjacency.
// Lineage edges form a DAG, so the recursion terminates without a
// visited set; a person reachable along two lines is drawn on both,
// matching the original program's charts.
func (r *Renderer) buildNode(
	q driving.QueryService,
	id string,
	maxDepth, depth int,
	next func(string) ([]domain.Person, error),
	withSpouses bool,
) (ChartNode, error) {
	p, err := q.Person(id)
	if err != nil {
		return ChartNode{}, err
	}

	node := ChartNode{Lines: r.entryLines(q, p, depth == 0, withSpouses)}
	if maxDepth > 0 && depth >= maxDepth {
		return node, nil
	}

	related, err := next(id)
	if err != nil {
		return ChartNode{}, err
	}
	for _, rel := range related {
		child, err := r.buildNode(q, rel.ID, maxDepth, depth+1, next, withSpouses)
		if err != nil {
			return ChartNode{}, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// entryLines renders the display lines of one person: the name line,
// then aligned Birth/Death (and optionally Spouse) fields beneath it.
func (r *Renderer) entryLines(q driving.QueryService, p *domain.Person, isRoot, withSpouses bool) []string {
	name := p.Name() + " " + r.styles.ID.Render("("+p.ID+")")
	if isRoot {
		name = r.styles.Root.Render(p.Name() + " (" + p.ID + ")")
	}
	lines := []string{name}

	addField := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s %s", r.styles.Label.Render(label+":"), value))
		}
	}
	addField("Birth", p.Birth.String())
	addField("Death", p.Death.String())

	if withSpouses || isRoot {
		if spouses, err := q.Spouses(p.ID); err == nil {
			for _, s := range spouses {
				addField("Spouse", s.Name()+" ("+s.ID+")")
			}
		}
	}
	return lines
}

// printNode draws a node and its subtree. Continuation lines of a
// multi-line entry are carried on the same pipe rail as its siblings,
// like the original chart layout.
func (r *Renderer) printNode(b *strings.Builder, n ChartNode, last bool, header string, isRoot bool) {
	connector := r.styles.Line.Render(r.lines.Tee)
	carry := header + r.styles.Line.Render(r.lines.Pipe)
	if last {
		connector = r.styles.Line.Render(r.lines.Elbow)
		carry = header + r.lines.Blank
	}

	for i, text := range n.Lines {
		switch {
		case isRoot && i == 0:
			b.WriteString(text + "\n")
		case isRoot:
			b.WriteString(r.lines.Blank + text + "\n")
		case i == 0:
			b.WriteString(header + connector + text + "\n")
		default:
			b.WriteString(carry + text + "\n")
		}
	}

	childHeader := carry
	if isRoot {
		childHeader = ""
	}
	for i, c := range n.Children {
		r.printNode(b, c, i == len(n.Children)-1, childHeader, false)
	}
}
