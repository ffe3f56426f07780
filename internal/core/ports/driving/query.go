package driving

import "github.com/gtree-project/gtree/internal/core/domain"

// QueryService answers structural questions over the family graph.
// Implementations are stateless between calls; all state lives in the
// record model and the derived graph index.
type QueryService interface {
	// AncestorsOf walks ancestors breadth-first by generation
	// (parents before grandparents), deduplicated at the shallowest
	// depth. maxDepth 0 means unlimited.
	AncestorsOf(id string, maxDepth int) ([]domain.GenerationEntry, error)

	// DescendantsOf walks descendants breadth-first by generation,
	// symmetric to AncestorsOf. maxDepth 0 means unlimited.
	DescendantsOf(id string, maxDepth int) ([]domain.GenerationEntry, error)

	// SiblingsOf returns every person sharing at least one parent
	// with id, excluding id itself, tagged full or half.
	SiblingsOf(id string) ([]domain.Sibling, error)

	// RelationshipPath finds the shortest chain of parent-child and
	// spousal edges connecting a to b, treating both edge kinds as
	// undirected. It returns nil (and no error) when the two persons
	// are not connected. Ties between equal-length paths are broken
	// deterministically: blood edges beat spousal edges, then the
	// lowest person id wins.
	RelationshipPath(a, b string) ([]domain.PathStep, error)

	// GenerationNumber is the signed blood-lineage distance of id
	// from root: ancestors negative, descendants positive. ok is
	// false when the two share no pure lineage line; a spousal-only
	// connection does not establish a generation.
	GenerationNumber(id, root string) (n int, ok bool, err error)

	// Validate sweeps the whole tree, re-checking every structural
	// invariant and adding plausibility warnings. It never mutates.
	Validate() []domain.ValidationIssue

	// Find returns persons whose names match the given criteria.
	Find(q domain.PersonQuery) ([]domain.Person, error)

	// Person retrieves a single person by id.
	Person(id string) (*domain.Person, error)

	// Parents, Children and Spouses expose the adjacency of one
	// person for profile rendering.
	Parents(id string) ([]domain.Person, error)
	Children(id string) ([]domain.Person, error)
	Spouses(id string) ([]domain.Person, error)

	// Persons lists every person, sorted by id.
	Persons() []domain.Person
}
