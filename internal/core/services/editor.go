package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/ports/driven"
	"github.com/gtree-project/gtree/internal/core/ports/driving"
	"github.com/gtree-project/gtree/internal/logger"
)

// Ensure EditorService implements the interface.
var _ driving.EditorService = (*EditorService)(nil)

// EditorService applies mutations to the record model and writes the
// tree back to its file. It owns nothing itself: the tree is the
// source of truth and each mutation either commits there atomically or
// fails without side effects.
type EditorService struct {
	tree  *domain.Tree
	store driven.TreeStore
	path  string
}

// NewEditorService creates an editor over a loaded tree. path is the
// file the tree came from and the target of Save.
func NewEditorService(tree *domain.Tree, store driven.TreeStore, path string) *EditorService {
	return &EditorService{tree: tree, store: store, path: path}
}

// AddPerson creates a person, allocating a fresh id.
func (s *EditorService) AddPerson(p domain.Person) (string, error) {
	id, err := s.tree.AddPerson(p)
	if err != nil {
		return "", err
	}
	logger.Debug("added person %s (version %d)", id, s.tree.Version())
	return id, nil
}

// UpdatePerson replaces the fields of an existing person.
func (s *EditorService) UpdatePerson(id string, p domain.Person) error {
	return s.tree.UpdatePerson(id, p)
}

// RemovePerson deletes a person, cascading relationship deletion.
func (s *EditorService) RemovePerson(id string) error {
	if err := s.tree.RemovePerson(id); err != nil {
		return err
	}
	logger.Debug("removed person %s and its relationships", id)
	return nil
}

// AddRelationship creates an edge. External ids are UUIDs so that
// hand-written edges and tool-written edges can never collide.
func (s *EditorService) AddRelationship(r domain.Relationship) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	id, err := s.tree.AddRelationship(r)
	if err != nil {
		return "", err
	}
	logger.Debug("added %s relationship %s", r.Kind, id)
	return id, nil
}

// UpdateRelationship replaces the fields of an existing edge.
func (s *EditorService) UpdateRelationship(id string, r domain.Relationship) error {
	return s.tree.UpdateRelationship(id, r)
}

// RemoveRelationship deletes an edge.
func (s *EditorService) RemoveRelationship(id string) error {
	return s.tree.RemoveRelationship(id)
}

// Save writes the tree back to the file it was loaded from.
func (s *EditorService) Save() error {
	if s.path == "" {
		return fmt.Errorf("no file is open")
	}
	if err := s.store.Save(s.tree, s.path); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	logger.Debug("saved %s (version %d)", s.path, s.tree.Version())
	return nil
}

// Path returns the file path the tree was loaded from.
func (s *EditorService) Path() string { return s.path }
