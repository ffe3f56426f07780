package domain

import "strconv"

// RelKind identifies the two edge kinds of the family graph.
type RelKind string

const (
	// KindParentChild is a directed lineage edge from parent to child.
	KindParentChild RelKind = "parent-child"

	// KindSpousal is an undirected partnership edge, optionally
	// time-bounded by marriage and divorce dates.
	KindSpousal RelKind = "spousal"
)

// IsValid reports whether k is a defined relationship kind.
func (k RelKind) IsValid() bool {
	return k == KindParentChild || k == KindSpousal
}

// SpousalStatus records whether a spousal relationship is ongoing.
type SpousalStatus string

const (
	StatusCurrent SpousalStatus = "current"
	StatusEnded   SpousalStatus = "ended"
	StatusUnknown SpousalStatus = "unknown"
)

// IsValid reports whether s is a defined spousal status.
func (s SpousalStatus) IsValid() bool {
	return s == StatusCurrent || s == StatusEnded || s == StatusUnknown
}

// Relationship is an edge between two persons.
//
// For parent-child edges ParentID and ChildID are set; the edge is
// directed from parent to child. For spousal edges PersonA and PersonB
// are set; the pair is unordered but stored canonically with
// CompareIDs(PersonA, PersonB) < 0 so serialisation is deterministic.
type Relationship struct {
	// ID is the unique identifier. Assigned once, never reused.
	ID string

	// Kind is parent-child or spousal.
	Kind RelKind

	// ParentID and ChildID are set for parent-child edges.
	ParentID string
	ChildID  string

	// PersonA and PersonB are set for spousal edges.
	PersonA string
	PersonB string

	// Start and End bound a spousal relationship (marriage, divorce).
	Start PartialDate
	End   PartialDate

	// Status is current, ended or unknown for spousal edges.
	Status SpousalStatus

	// Unknown holds unrecognised file fields, preserved in file order.
	Unknown []Field
}

// Canonicalise orders the endpoints of a spousal edge so that the same
// pair always stores and serialises identically.
func (r *Relationship) Canonicalise() {
	if r.Kind == KindSpousal && CompareIDs(r.PersonB, r.PersonA) < 0 {
		r.PersonA, r.PersonB = r.PersonB, r.PersonA
	}
}

// Endpoints returns the two person ids the edge connects.
func (r *Relationship) Endpoints() (string, string) {
	if r.Kind == KindParentChild {
		return r.ParentID, r.ChildID
	}
	return r.PersonA, r.PersonB
}

// References reports whether the edge touches the given person id.
func (r *Relationship) References(id string) bool {
	a, b := r.Endpoints()
	return a == id || b == id
}

// CompareIDs orders two entity ids. Ids that both parse as integers
// compare numerically, so the common hand-numbered files sort as a
// human expects ("2" before "10"); everything else is lexicographic.
func CompareIDs(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
