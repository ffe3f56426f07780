package domain

import "fmt"

// GenerationEntry is one person yielded by an ancestor or descendant
// walk, tagged with its generation distance from the starting person.
type GenerationEntry struct {
	// Person is the person reached.
	Person Person

	// Depth is the generation distance from the start: 1 for parents
	// or children, 2 for grandparents or grandchildren, and so on.
	// A person reachable along several lines (pedigree collapse) is
	// reported once, at the shallowest depth.
	Depth int
}

// Sibling is a person sharing at least one parent with the queried
// person, tagged with whether both parents are shared.
type Sibling struct {
	Person Person

	// Full is true when both parents are shared, false for half
	// siblings sharing exactly one.
	Full bool
}

// PathStep is one hop of a kinship path: the person arrived at and the
// kind of edge that was crossed to reach them.
type PathStep struct {
	Person Person
	Edge   RelKind
}

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityError marks a broken invariant.
	SeverityError Severity = "error"

	// SeverityWarning marks implausible but structurally legal data.
	// Hand-maintained files legitimately contain provisional entries,
	// so warnings never block a save.
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one finding of the full-tree validation sweep.
type ValidationIssue struct {
	// Severity is error or warning.
	Severity Severity

	// Invariant names the rule involved, or is empty for soft
	// warnings with no corresponding hard invariant.
	Invariant Invariant

	// PersonID and RelationshipID locate the finding; either may be
	// empty.
	PersonID       string
	RelationshipID string

	// Message is the human-readable description.
	Message string
}

func (i ValidationIssue) String() string {
	loc := ""
	switch {
	case i.PersonID != "":
		loc = fmt.Sprintf(" person %s:", i.PersonID)
	case i.RelationshipID != "":
		loc = fmt.Sprintf(" relationship %s:", i.RelationshipID)
	}
	return fmt.Sprintf("%s:%s %s", i.Severity, loc, i.Message)
}
