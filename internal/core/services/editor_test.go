package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/ports/driven"
)

// fakeStore records Save calls for editor tests.
type fakeStore struct {
	saved     *domain.Tree
	savedPath string
	err       error
}

var _ driven.TreeStore = (*fakeStore)(nil)

func (s *fakeStore) Load(string) (*domain.Tree, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStore) Save(tree *domain.Tree, path string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = tree
	s.savedPath = path
	return nil
}

func TestEditorService_AddPerson(t *testing.T) {
	tree := domain.NewTree()
	ed := NewEditorService(tree, &fakeStore{}, "family.gtr")

	id, err := ed.AddPerson(domain.Person{GivenName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestEditorService_AddRelationship_AssignsUUID(t *testing.T) {
	tree := buildTree(t)
	ed := NewEditorService(tree, &fakeStore{}, "family.gtr")

	id, err := ed.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "3", ChildID: "5",
	})
	require.NoError(t, err)
	assert.Len(t, id, 36, "external relationship ids are UUIDs")
}

func TestEditorService_FailedAddLeavesCountsUnchanged(t *testing.T) {
	tree := buildTree(t)
	ed := NewEditorService(tree, &fakeStore{}, "family.gtr")

	persons, rels := tree.PersonCount(), tree.RelationshipCount()

	// 5 already has a parent; give it a second, then a third must fail.
	_, err := ed.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "3", ChildID: "5",
	})
	require.NoError(t, err)
	_, err = ed.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "2", ChildID: "5",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, persons, tree.PersonCount())
	assert.Equal(t, rels+1, tree.RelationshipCount())
}

func TestEditorService_Save(t *testing.T) {
	tree := buildTree(t)
	store := &fakeStore{}
	ed := NewEditorService(tree, store, "family.gtr")

	require.NoError(t, ed.Save())
	assert.Same(t, tree, store.saved)
	assert.Equal(t, "family.gtr", store.savedPath)
}

func TestEditorService_SaveWithoutPath(t *testing.T) {
	ed := NewEditorService(domain.NewTree(), &fakeStore{}, "")
	assert.Error(t, ed.Save())
}

func TestEditorService_RemovePersonCascades(t *testing.T) {
	tree := buildTree(t)
	ed := NewEditorService(tree, &fakeStore{}, "family.gtr")

	require.NoError(t, ed.RemovePerson("1"))
	for _, r := range tree.Relationships() {
		assert.False(t, r.References("1"))
	}
}
