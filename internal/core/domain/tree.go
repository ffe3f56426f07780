package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// MaxParents is the biological parent bound enforced on every child.
const MaxParents = 2

// Tree is the record model: the single owner of every Person and
// Relationship. All mutations validate the full invariant set before
// committing and leave the tree untouched on failure.
//
// Every successful mutation increments a monotonic version counter,
// which derived caches (the graph index) use to detect staleness.
type Tree struct {
	persons       map[string]Person
	relationships map[string]Relationship

	// version increments on every successful mutation.
	version uint64

	// nextPersonID is the highest numeric person id ever seen plus
	// one. Ids are never reused, even after deletion.
	nextPersonID int

	// nextRelSeq numbers fallback relationship ids ("r1", "r2", ...)
	// for callers that do not supply their own.
	nextRelSeq int
}

// NewTree creates an empty record model.
func NewTree() *Tree {
	return &Tree{
		persons:       make(map[string]Person),
		relationships: make(map[string]Relationship),
		nextPersonID:  1,
		nextRelSeq:    1,
	}
}

// Version returns the monotonic mutation counter.
func (t *Tree) Version() uint64 { return t.version }

// PersonCount returns the number of persons in the tree.
func (t *Tree) PersonCount() int { return len(t.persons) }

// RelationshipCount returns the number of relationships in the tree.
func (t *Tree) RelationshipCount() int { return len(t.relationships) }

// Person retrieves a person by id. The returned value is a copy; the
// tree remains the owner of the stored entity.
func (t *Tree) Person(id string) (*Person, error) {
	p, ok := t.persons[id]
	if !ok {
		return nil, &NotFoundError{Kind: "person", ID: id}
	}
	return &p, nil
}

// Relationship retrieves a relationship by id.
func (t *Tree) Relationship(id string) (*Relationship, error) {
	r, ok := t.relationships[id]
	if !ok {
		return nil, &NotFoundError{Kind: "relationship", ID: id}
	}
	return &r, nil
}

// Persons returns all persons sorted by id.
func (t *Tree) Persons() []Person {
	out := make([]Person, 0, len(t.persons))
	for _, p := range t.persons {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return CompareIDs(out[i].ID, out[j].ID) < 0
	})
	return out
}

// Relationships returns all relationships, parent-child edges before
// spousal ones, each group ordered by canonical endpoints. This is the
// serialisation order, so repeated saves are byte-identical.
func (t *Tree) Relationships() []Relationship {
	out := make([]Relationship, 0, len(t.relationships))
	for _, r := range t.relationships {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if a.Kind != b.Kind {
			return a.Kind == KindParentChild
		}
		a1, a2 := a.Endpoints()
		b1, b2 := b.Endpoints()
		if c := CompareIDs(a1, b1); c != 0 {
			return c < 0
		}
		if c := CompareIDs(a2, b2); c != 0 {
			return c < 0
		}
		return CompareIDs(a.ID, b.ID) < 0
	})
	return out
}

// AddPerson validates and inserts a person, returning its id. When
// p.ID is empty a fresh numeric id is allocated; ids are never reused.
// Inserting an explicit id that already exists is a validation error
// (the codec relies on this for duplicate detection).
func (t *Tree) AddPerson(p Person) (string, error) {
	if err := validatePersonFields(&p); err != nil {
		return "", err
	}

	if p.ID == "" {
		p.ID = strconv.Itoa(t.nextPersonID)
	} else if _, exists := t.persons[p.ID]; exists {
		return "", &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    fmt.Sprintf("person id %q already exists", p.ID),
		}
	}

	t.persons[p.ID] = p
	t.noteNumericID(p.ID)
	t.version++
	return p.ID, nil
}

// UpdatePerson replaces the stored fields of an existing person after
// re-validating them. The id itself cannot change. On failure the
// stored person is unchanged.
func (t *Tree) UpdatePerson(id string, p Person) error {
	if _, ok := t.persons[id]; !ok {
		return &NotFoundError{Kind: "person", ID: id}
	}
	p.ID = id
	if err := validatePersonFields(&p); err != nil {
		return err
	}
	t.persons[id] = p
	t.version++
	return nil
}

// RemovePerson deletes a person and cascades deletion of every
// relationship that references it.
func (t *Tree) RemovePerson(id string) error {
	if _, ok := t.persons[id]; !ok {
		return &NotFoundError{Kind: "person", ID: id}
	}

	delete(t.persons, id)
	for rid, r := range t.relationships {
		if r.References(id) {
			delete(t.relationships, rid)
		}
	}
	t.version++
	return nil
}

// AddRelationship validates and inserts an edge, returning its id.
// The full invariant set is checked before anything is stored: the add
// is atomic and a failure leaves the tree untouched. When r.ID is
// empty a fallback sequential id is allocated; callers that want
// stable external ids (the editor assigns UUIDs) set it themselves.
func (t *Tree) AddRelationship(r Relationship) (string, error) {
	r.Canonicalise()
	if err := t.validateRelationship(&r, ""); err != nil {
		return "", err
	}

	if r.ID == "" {
		r.ID = t.allocRelID()
	} else if _, exists := t.relationships[r.ID]; exists {
		return "", &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    fmt.Sprintf("relationship id %q already exists", r.ID),
		}
	}

	t.relationships[r.ID] = r
	t.version++
	return r.ID, nil
}

// UpdateRelationship replaces an existing edge after re-validating
// exactly as AddRelationship does, ignoring the edge's own previous
// state. On failure the stored edge is unchanged.
func (t *Tree) UpdateRelationship(id string, r Relationship) error {
	if _, ok := t.relationships[id]; !ok {
		return &NotFoundError{Kind: "relationship", ID: id}
	}
	r.ID = id
	r.Canonicalise()
	if err := t.validateRelationship(&r, id); err != nil {
		return err
	}
	t.relationships[id] = r
	t.version++
	return nil
}

// RemoveRelationship deletes an edge. Removal can never violate an
// invariant, so it always succeeds for a known id.
func (t *Tree) RemoveRelationship(id string) error {
	if _, ok := t.relationships[id]; !ok {
		return &NotFoundError{Kind: "relationship", ID: id}
	}
	delete(t.relationships, id)
	t.version++
	return nil
}

// ParentIDs returns the ids of the (at most two) parents of a child.
func (t *Tree) ParentIDs(childID string) []string {
	var out []string
	for _, r := range t.relationships {
		if r.Kind == KindParentChild && r.ChildID == childID {
			out = append(out, r.ParentID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return CompareIDs(out[i], out[j]) < 0 })
	return out
}

// noteNumericID advances the id allocator past any numeric id that has
// ever been inserted, so deleted ids are never handed out again.
func (t *Tree) noteNumericID(id string) {
	if n, err := strconv.Atoi(id); err == nil && n >= t.nextPersonID {
		t.nextPersonID = n + 1
	}
}

func (t *Tree) allocRelID() string {
	for {
		id := "r" + strconv.Itoa(t.nextRelSeq)
		t.nextRelSeq++
		if _, exists := t.relationships[id]; !exists {
			return id
		}
	}
}

// validatePersonFields checks the field-level invariants of a person.
func validatePersonFields(p *Person) error {
	if p.Sex == "" {
		p.Sex = SexUnknown
	}
	if !p.Sex.IsValid() {
		return &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    fmt.Sprintf("sex %q is not male, female or unknown", p.Sex),
		}
	}
	if !p.Birth.NotAfter(p.Death) {
		return &ValidationError{
			Invariant: InvariantDateOrder,
			Detail: fmt.Sprintf("birth %s is after death %s",
				p.Birth, p.Death),
		}
	}
	return nil
}

// validateRelationship checks every relationship invariant. ignoreID
// names an edge to exclude from duplicate/count checks, used when that
// edge is being replaced by an update.
func (t *Tree) validateRelationship(r *Relationship, ignoreID string) error {
	if !r.Kind.IsValid() {
		return &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    fmt.Sprintf("unknown relationship kind %q", r.Kind),
		}
	}

	switch r.Kind {
	case KindParentChild:
		return t.validateParentChild(r, ignoreID)
	default:
		return t.validateSpousal(r, ignoreID)
	}
}

func (t *Tree) validateParentChild(r *Relationship, ignoreID string) error {
	if r.ParentID == r.ChildID {
		return &ValidationError{
			Invariant: InvariantAcyclic,
			Detail:    fmt.Sprintf("person %q cannot be their own parent", r.ParentID),
		}
	}
	for _, id := range []string{r.ParentID, r.ChildID} {
		if _, ok := t.persons[id]; !ok {
			return &ValidationError{
				Invariant: InvariantReference,
				Detail:    fmt.Sprintf("parent-child edge references unknown person %q", id),
			}
		}
	}

	parents := 0
	for rid, other := range t.relationships {
		if rid == ignoreID || other.Kind != KindParentChild {
			continue
		}
		if other.ChildID == r.ChildID {
			if other.ParentID == r.ParentID {
				return &ValidationError{
					Invariant: InvariantDuplicateEdge,
					Detail: fmt.Sprintf("%q is already recorded as a parent of %q",
						r.ParentID, r.ChildID),
				}
			}
			parents++
		}
	}
	if parents >= MaxParents {
		return &ValidationError{
			Invariant: InvariantParentCount,
			Detail: fmt.Sprintf("person %q already has %d parents",
				r.ChildID, MaxParents),
		}
	}

	if t.reachableViaParents(r.ParentID, r.ChildID, ignoreID) {
		return &ValidationError{
			Invariant: InvariantAcyclic,
			Detail: fmt.Sprintf("edge %s -> %s would make %q their own ancestor",
				r.ParentID, r.ChildID, r.ChildID),
		}
	}

	if !r.Start.IsZero() || !r.End.IsZero() {
		return &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    "parent-child edges carry no start or end date",
		}
	}
	return nil
}

func (t *Tree) validateSpousal(r *Relationship, ignoreID string) error {
	if r.PersonA == r.PersonB {
		return &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    fmt.Sprintf("person %q cannot be their own spouse", r.PersonA),
		}
	}
	for _, id := range []string{r.PersonA, r.PersonB} {
		if _, ok := t.persons[id]; !ok {
			return &ValidationError{
				Invariant: InvariantReference,
				Detail:    fmt.Sprintf("spousal edge references unknown person %q", id),
			}
		}
	}
	if r.Status == "" {
		r.Status = StatusUnknown
	}
	if !r.Status.IsValid() {
		return &ValidationError{
			Invariant: InvariantFieldValue,
			Detail:    fmt.Sprintf("unknown spousal status %q", r.Status),
		}
	}
	if !r.Start.NotAfter(r.End) {
		return &ValidationError{
			Invariant: InvariantDateOrder,
			Detail:    fmt.Sprintf("start %s is after end %s", r.Start, r.End),
		}
	}

	for rid, other := range t.relationships {
		if rid == ignoreID || other.Kind != KindSpousal {
			continue
		}
		if other.PersonA != r.PersonA || other.PersonB != r.PersonB {
			continue
		}
		if RangesOverlap(r.Start, r.End, other.Start, other.End) {
			return &ValidationError{
				Invariant: InvariantSpousalOverlap,
				Detail: fmt.Sprintf("persons %q and %q already have a spousal edge over an overlapping period",
					r.PersonA, r.PersonB),
			}
		}
	}
	return nil
}

// reachableViaParents reports whether target is an ancestor of start,
// walking child-to-parent edges. ignoreID excludes an edge being
// replaced. The walk terminates because existing edges form a DAG.
func (t *Tree) reachableViaParents(start, target, ignoreID string) bool {
	queue := []string{start}
	visited := map[string]bool{start: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return true
		}
		for rid, r := range t.relationships {
			if rid == ignoreID || r.Kind != KindParentChild || r.ChildID != cur {
				continue
			}
			if !visited[r.ParentID] {
				visited[r.ParentID] = true
				queue = append(queue, r.ParentID)
			}
		}
	}
	return false
}
