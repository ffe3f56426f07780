package services

import (
	"fmt"
	"regexp"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService is the kinship query engine. It is stateless between
// calls: all state lives in the record model and the graph index,
// which is rebuilt whenever a mutation has made it stale.
type QueryService struct {
	tree *domain.Tree
	idx  *Index

	// maxAgeYears is the plausibility threshold for "probably
	// deceased" warnings in Validate.
	maxAgeYears int
}

// DefaultMaxAgeYears is the age beyond which a person without a death
// date draws a plausibility warning.
const DefaultMaxAgeYears = 110

// NewQueryService creates a query engine over the given record model.
// maxAgeYears <= 0 selects DefaultMaxAgeYears.
func NewQueryService(tree *domain.Tree, maxAgeYears int) *QueryService {
	if maxAgeYears <= 0 {
		maxAgeYears = DefaultMaxAgeYears
	}
	return &QueryService{
		tree:        tree,
		idx:         NewIndex(tree),
		maxAgeYears: maxAgeYears,
	}
}

// AncestorsOf walks ancestors breadth-first by generation. A person
// reachable along several lines (pedigree collapse from cousin
// marriage) is yielded once, at its shallowest depth. The walk always
// terminates because lineage edges form a DAG.
func (s *QueryService) AncestorsOf(id string, maxDepth int) ([]domain.GenerationEntry, error) {
	return s.walk(id, maxDepth, s.idx.Fresh().Parents)
}

// DescendantsOf walks descendants breadth-first, symmetric to
// AncestorsOf.
func (s *QueryService) DescendantsOf(id string, maxDepth int) ([]domain.GenerationEntry, error) {
	return s.walk(id, maxDepth, s.idx.Fresh().Children)
}

// walk is the shared breadth-first generation walk over one adjacency
// direction.
func (s *QueryService) walk(id string, maxDepth int, next func(string) []string) ([]domain.GenerationEntry, error) {
	idx := s.idx.Fresh()
	if _, ok := idx.Person(id); !ok {
		return nil, &domain.NotFoundError{Kind: "person", ID: id}
	}

	type item struct {
		id    string
		depth int
	}
	queue := []item{{id, 0}}
	visited := map[string]bool{id: true}
	var out []domain.GenerationEntry

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth > 0 {
			p, _ := idx.Person(cur.id)
			out = append(out, domain.GenerationEntry{Person: p, Depth: cur.depth})
		}
		if maxDepth > 0 && cur.depth >= maxDepth {
			continue
		}
		for _, nid := range next(cur.id) {
			if !visited[nid] {
				visited[nid] = true
				queue = append(queue, item{nid, cur.depth + 1})
			}
		}
	}
	return out, nil
}

// SiblingsOf returns every person sharing at least one parent with id,
// excluding id itself, tagged full (both parents shared) or half.
func (s *QueryService) SiblingsOf(id string) ([]domain.Sibling, error) {
	idx := s.idx.Fresh()
	if _, ok := idx.Person(id); !ok {
		return nil, &domain.NotFoundError{Kind: "person", ID: id}
	}

	parents := idx.Parents(id)
	shared := make(map[string]int)
	for _, pid := range parents {
		for _, cid := range idx.Children(pid) {
			if cid != id {
				shared[cid]++
			}
		}
	}

	var out []domain.Sibling
	for _, p := range s.tree.Persons() {
		n, ok := shared[p.ID]
		if !ok {
			continue
		}
		// Full siblings share both parents; that requires both sides
		// to have two recorded parents and both to match.
		full := n == 2 && len(parents) == 2 && len(idx.Parents(p.ID)) == 2
		out = append(out, domain.Sibling{Person: p, Full: full})
	}
	return out, nil
}

// RelationshipPath finds the minimum-edge chain connecting a and b,
// treating parent-child and spousal edges as one undirected graph for
// this query only. The returned steps start with the first hop away
// from a and end at b; nil means the two are not connected.
//
// Determinism: neighbours expand blood edges before spousal edges and
// lower ids first, so among equal-length paths the blood-preferring,
// lowest-id path is always the one found.
func (s *QueryService) RelationshipPath(a, b string) ([]domain.PathStep, error) {
	idx := s.idx.Fresh()
	for _, id := range []string{a, b} {
		if _, ok := idx.Person(id); !ok {
			return nil, &domain.NotFoundError{Kind: "person", ID: id}
		}
	}
	if a == b {
		return []domain.PathStep{}, nil
	}

	type hop struct {
		prev string
		via  domain.RelKind
	}
	prev := map[string]hop{a: {}}
	queue := []string{a}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			break
		}
		for _, e := range idx.Neighbours(cur) {
			if _, seen := prev[e.to]; !seen {
				prev[e.to] = hop{prev: cur, via: e.kind}
				queue = append(queue, e.to)
			}
		}
	}

	if _, found := prev[b]; !found {
		return nil, nil
	}

	var steps []domain.PathStep
	for cur := b; cur != a; cur = prev[cur].prev {
		p, _ := idx.Person(cur)
		steps = append(steps, domain.PathStep{Person: p, Edge: prev[cur].via})
	}
	// Reverse into a-to-b order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}

// GenerationNumber computes the signed blood-lineage distance of id
// from root: negative for ancestors of root, positive for descendants.
// ok is false when neither lineage walk reaches id; a spousal-only
// connection does not establish a generation number.
func (s *QueryService) GenerationNumber(id, root string) (int, bool, error) {
	idx := s.idx.Fresh()
	for _, pid := range []string{id, root} {
		if _, ok := idx.Person(pid); !ok {
			return 0, false, &domain.NotFoundError{Kind: "person", ID: pid}
		}
	}
	if id == root {
		return 0, true, nil
	}

	descendants, err := s.DescendantsOf(root, 0)
	if err != nil {
		return 0, false, err
	}
	for _, e := range descendants {
		if e.Person.ID == id {
			return e.Depth, true, nil
		}
	}

	ancestors, err := s.AncestorsOf(root, 0)
	if err != nil {
		return 0, false, err
	}
	for _, e := range ancestors {
		if e.Person.ID == id {
			return -e.Depth, true, nil
		}
	}
	return 0, false, nil
}

// Find returns persons matching the query, sorted by id. Patterns are
// regular expressions, like the original list command.
func (s *QueryService) Find(q domain.PersonQuery) ([]domain.Person, error) {
	type matcher struct {
		re      *regexp.Regexp
		extract func(*domain.Person) []string
	}
	var matchers []matcher

	add := func(pattern string, extract func(*domain.Person) []string) error {
		if pattern == "" {
			return nil
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		matchers = append(matchers, matcher{re, extract})
		return nil
	}

	if err := add(q.Given, func(p *domain.Person) []string { return []string{p.GivenName} }); err != nil {
		return nil, err
	}
	if err := add(q.Surname, func(p *domain.Person) []string { return []string{p.Surname} }); err != nil {
		return nil, err
	}
	if err := add(q.Any, func(p *domain.Person) []string {
		return []string{p.Name(), p.ID, p.Notes}
	}); err != nil {
		return nil, err
	}

	var out []domain.Person
	for _, p := range s.tree.Persons() {
		matched := true
		for _, m := range matchers {
			hit := false
			for _, field := range m.extract(&p) {
				if m.re.MatchString(field) {
					hit = true
					break
				}
			}
			if !hit {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, p)
		}
	}
	return out, nil
}

// Person retrieves a single person by id.
func (s *QueryService) Person(id string) (*domain.Person, error) {
	return s.tree.Person(id)
}

// Persons lists every person sorted by id.
func (s *QueryService) Persons() []domain.Person {
	return s.tree.Persons()
}

// Parents returns the parents of a person, sorted by id.
func (s *QueryService) Parents(id string) ([]domain.Person, error) {
	return s.resolve(id, s.idx.Fresh().Parents)
}

// Children returns the children of a person, sorted by id.
func (s *QueryService) Children(id string) ([]domain.Person, error) {
	return s.resolve(id, s.idx.Fresh().Children)
}

// Spouses returns the spouses of a person, sorted by id.
func (s *QueryService) Spouses(id string) ([]domain.Person, error) {
	return s.resolve(id, s.idx.Fresh().Spouses)
}

func (s *QueryService) resolve(id string, adjacency func(string) []string) ([]domain.Person, error) {
	idx := s.idx.Fresh()
	if _, ok := idx.Person(id); !ok {
		return nil, &domain.NotFoundError{Kind: "person", ID: id}
	}
	var out []domain.Person
	for _, nid := range adjacency(id) {
		if p, ok := idx.Person(nid); ok {
			out = append(out, p)
		}
	}
	return out, nil
}
