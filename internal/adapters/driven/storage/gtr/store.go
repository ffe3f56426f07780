package gtr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/ports/driven"
	"github.com/gtree-project/gtree/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TreeStore = (*Store)(nil)

// Store is the file-backed TreeStore for .gtr files.
type Store struct{}

// NewStore creates a gtr file store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the tree at path.
func (s *Store) Load(path string) (*domain.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("loaded %s: %d persons, %d relationships",
		path, tree.PersonCount(), tree.RelationshipCount())
	return tree, nil
}

// Save serialises the tree and writes it to path atomically: the
// bytes land in a temporary file in the same directory which is then
// renamed over the target, so a failed save never truncates the
// user's hand-maintained file.
func (s *Store) Save(tree *domain.Tree, path string) error {
	data := Serialize(tree)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gtree-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename over %s: %w", path, err)
	}
	return nil
}
