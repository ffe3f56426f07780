package services

import (
	"sort"

	"github.com/gtree-project/gtree/internal/core/domain"
)

// edge is one undirected hop used by the path search: the person
// reached and the kind of relationship crossed.
type edge struct {
	to   string
	kind domain.RelKind
}

// Index is the derived lookup cache over the record model: person by
// id, children by parent, parents by child, spouses by person and
// persons by surname, all in O(1)/O(result) time.
//
// The index carries the model version it was built from. It is never
// patched incrementally; queries that find it stale rebuild it with a
// full O(P+R) pass before answering. Expected tree sizes are hundreds
// to low thousands of entries, so rebuilds are cheap.
type Index struct {
	tree    *domain.Tree
	version uint64

	persons   map[string]domain.Person
	parents   map[string][]string
	children  map[string][]string
	spouses   map[string][]string
	bySurname map[string][]string

	// neighbours is the undirected adjacency for path search, each
	// list sorted blood edges first, then by neighbour id, so BFS
	// discovery order is deterministic.
	neighbours map[string][]edge
}

// NewIndex builds an index over the given record model.
func NewIndex(tree *domain.Tree) *Index {
	idx := &Index{tree: tree}
	idx.Rebuild()
	return idx
}

// IsStale reports whether the model has been mutated since the index
// was built.
func (x *Index) IsStale() bool {
	return x.version != x.tree.Version()
}

// Fresh rebuilds the index if it is stale. Every query goes through
// here first; a stale index never answers.
func (x *Index) Fresh() *Index {
	if x.IsStale() {
		x.Rebuild()
	}
	return x
}

// Rebuild repopulates every lookup table from the current model state.
func (x *Index) Rebuild() {
	x.persons = make(map[string]domain.Person)
	x.parents = make(map[string][]string)
	x.children = make(map[string][]string)
	x.spouses = make(map[string][]string)
	x.bySurname = make(map[string][]string)
	x.neighbours = make(map[string][]edge)

	for _, p := range x.tree.Persons() {
		x.persons[p.ID] = p
		if p.Surname != "" {
			x.bySurname[p.Surname] = append(x.bySurname[p.Surname], p.ID)
		}
	}

	for _, r := range x.tree.Relationships() {
		switch r.Kind {
		case domain.KindParentChild:
			x.children[r.ParentID] = append(x.children[r.ParentID], r.ChildID)
			x.parents[r.ChildID] = append(x.parents[r.ChildID], r.ParentID)
		case domain.KindSpousal:
			x.spouses[r.PersonA] = append(x.spouses[r.PersonA], r.PersonB)
			x.spouses[r.PersonB] = append(x.spouses[r.PersonB], r.PersonA)
		}
		a, b := r.Endpoints()
		x.neighbours[a] = append(x.neighbours[a], edge{to: b, kind: r.Kind})
		x.neighbours[b] = append(x.neighbours[b], edge{to: a, kind: r.Kind})
	}

	for _, m := range []map[string][]string{x.parents, x.children, x.spouses, x.bySurname} {
		for _, ids := range m {
			sort.Slice(ids, func(i, j int) bool {
				return domain.CompareIDs(ids[i], ids[j]) < 0
			})
		}
	}
	for _, edges := range x.neighbours {
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].kind != edges[j].kind {
				return edges[i].kind == domain.KindParentChild
			}
			return domain.CompareIDs(edges[i].to, edges[j].to) < 0
		})
	}

	x.version = x.tree.Version()
}

// Person looks up a person by id.
func (x *Index) Person(id string) (domain.Person, bool) {
	p, ok := x.persons[id]
	return p, ok
}

// Parents returns the parent ids of a child, at most two.
func (x *Index) Parents(id string) []string { return x.parents[id] }

// Children returns the child ids of a parent.
func (x *Index) Children(id string) []string { return x.children[id] }

// Spouses returns the spouse ids of a person.
func (x *Index) Spouses(id string) []string { return x.spouses[id] }

// BySurname returns the ids of persons with the given surname.
func (x *Index) BySurname(surname string) []string { return x.bySurname[surname] }

// Neighbours returns the undirected adjacency of a person for path
// search, blood edges first, then ordered by neighbour id.
func (x *Index) Neighbours(id string) []edge { return x.neighbours[id] }
