package driven

import "github.com/gtree-project/gtree/internal/core/domain"

// TreeStore loads and saves a record model from durable storage.
// Backed by the gtree text format on disk.
type TreeStore interface {
	// Load reads and parses the tree at path. Structural problems in
	// the file surface as *domain.FormatError with a line number.
	Load(path string) (*domain.Tree, error)

	// Save serialises the tree canonically and writes it to path.
	// The write is atomic: a failed save never truncates an existing
	// file. Saving an unmodified tree is byte-identical.
	Save(tree *domain.Tree, path string) error
}
