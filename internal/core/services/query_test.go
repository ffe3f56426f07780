package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtree-project/gtree/internal/core/domain"
)

func ids(entries []domain.GenerationEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Person.ID)
	}
	return out
}

func TestQueryService_AncestorsOf_BreadthFirst(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	got, err := q.AncestorsOf("5", 0)
	require.NoError(t, err)

	// Parent before grandparents.
	assert.Equal(t, []string{"4", "1", "2"}, ids(got))
	assert.Equal(t, 1, got[0].Depth)
	assert.Equal(t, 2, got[1].Depth)
}

func TestQueryService_AncestorsOf_MaxDepth(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	got, err := q.AncestorsOf("5", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestQueryService_AncestorsOf_NeverContainsSelf(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		got, err := q.AncestorsOf(id, 0)
		require.NoError(t, err)
		assert.NotContains(t, ids(got), id)
	}
}

func TestQueryService_AncestorsOf_PedigreeCollapse(t *testing.T) {
	// g is a shared grandparent on both sides: a and b are both
	// children of g's children, and c is a child of a and b.
	tree := domain.NewTree()
	for _, id := range []string{"g", "a", "b", "c"} {
		_, err := tree.AddPerson(domain.Person{ID: id})
		require.NoError(t, err)
	}
	for _, r := range []domain.Relationship{
		{Kind: domain.KindParentChild, ParentID: "g", ChildID: "a"},
		{Kind: domain.KindParentChild, ParentID: "g", ChildID: "b"},
		{Kind: domain.KindParentChild, ParentID: "a", ChildID: "c"},
		{Kind: domain.KindParentChild, ParentID: "b", ChildID: "c"},
	} {
		_, err := tree.AddRelationship(r)
		require.NoError(t, err)
	}

	q := NewQueryService(tree, 0)
	got, err := q.AncestorsOf("c", 0)
	require.NoError(t, err)

	// g is reachable through both a and b but must be yielded once,
	// at its shallowest depth.
	assert.Equal(t, []string{"a", "b", "g"}, ids(got))
	assert.Equal(t, 2, got[2].Depth)
}

func TestQueryService_DescendantsOf(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	got, err := q.DescendantsOf("1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "5"}, ids(got))
	assert.Equal(t, 2, got[2].Depth)
}

func TestQueryService_WalkUnknownPerson(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	_, err := q.AncestorsOf("404", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQueryService_SiblingsOf_FullAndHalf(t *testing.T) {
	tree := buildTree(t)
	// Add a half sibling: child of 1 only.
	_, err := tree.AddPerson(domain.Person{ID: "6", GivenName: "Hal"})
	require.NoError(t, err)
	_, err = tree.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "1", ChildID: "6",
	})
	require.NoError(t, err)

	q := NewQueryService(tree, 0)
	got, err := q.SiblingsOf("3")
	require.NoError(t, err)

	require.Len(t, got, 2)
	bySib := map[string]bool{}
	for _, s := range got {
		bySib[s.Person.ID] = s.Full
	}
	assert.True(t, bySib["4"], "4 shares both parents with 3")
	assert.False(t, bySib["6"], "6 shares only one parent with 3")
}

func TestQueryService_SiblingsOf_ExcludesSelf(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	got, err := q.SiblingsOf("4")
	require.NoError(t, err)
	for _, s := range got {
		assert.NotEqual(t, "4", s.Person.ID)
	}
}

func TestQueryService_RelationshipPath_SpecExample(t *testing.T) {
	// A-B parent-child, B-C spousal: path(A, C) is exactly
	// [(B, parent-child), (C, spousal)].
	tree := domain.NewTree()
	for _, id := range []string{"A", "B", "C"} {
		_, err := tree.AddPerson(domain.Person{ID: id})
		require.NoError(t, err)
	}
	_, err := tree.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "A", ChildID: "B",
	})
	require.NoError(t, err)
	_, err = tree.AddRelationship(domain.Relationship{
		Kind: domain.KindSpousal, PersonA: "B", PersonB: "C",
	})
	require.NoError(t, err)

	q := NewQueryService(tree, 0)
	path, err := q.RelationshipPath("A", "C")
	require.NoError(t, err)

	require.Len(t, path, 2)
	assert.Equal(t, "B", path[0].Person.ID)
	assert.Equal(t, domain.KindParentChild, path[0].Edge)
	assert.Equal(t, "C", path[1].Person.ID)
	assert.Equal(t, domain.KindSpousal, path[1].Edge)
}

func TestQueryService_RelationshipPath_PrefersBloodOnTies(t *testing.T) {
	// Two equal-length routes from 3 to 4: via parent 1 (blood only)
	// and via parent 2 (blood only) - lowest id must win; and from 3
	// to 2 the direct blood edge must beat any spousal detour.
	q := NewQueryService(buildTree(t), 0)

	path, err := q.RelationshipPath("3", "4")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "1", path[0].Person.ID, "lowest-id shared parent wins the tie")

	path, err = q.RelationshipPath("3", "2")
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, domain.KindParentChild, path[0].Edge)
}

func TestQueryService_RelationshipPath_Disconnected(t *testing.T) {
	tree := buildTree(t)
	_, err := tree.AddPerson(domain.Person{ID: "99", GivenName: "Island"})
	require.NoError(t, err)

	q := NewQueryService(tree, 0)
	path, err := q.RelationshipPath("1", "99")
	require.NoError(t, err, "disconnection is not an error")
	assert.Nil(t, path)
}

func TestQueryService_RelationshipPath_SamePerson(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	path, err := q.RelationshipPath("1", "1")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestQueryService_GenerationNumber_SpecExample(t *testing.T) {
	// Root R has child C1, C1 has child G1.
	tree := domain.NewTree()
	for _, id := range []string{"R", "C1", "G1"} {
		_, err := tree.AddPerson(domain.Person{ID: id})
		require.NoError(t, err)
	}
	for _, r := range []domain.Relationship{
		{Kind: domain.KindParentChild, ParentID: "R", ChildID: "C1"},
		{Kind: domain.KindParentChild, ParentID: "C1", ChildID: "G1"},
	} {
		_, err := tree.AddRelationship(r)
		require.NoError(t, err)
	}

	q := NewQueryService(tree, 0)

	n, ok, err := q.GenerationNumber("G1", "R")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok, err = q.GenerationNumber("R", "G1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -2, n)

	n, ok, err = q.GenerationNumber("R", "R")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestQueryService_GenerationNumber_SpousalOnlyIsNone(t *testing.T) {
	// A childless couple: connected, but not by blood.
	tree := domain.NewTree()
	for _, id := range []string{"x", "y"} {
		_, err := tree.AddPerson(domain.Person{ID: id})
		require.NoError(t, err)
	}
	_, err := tree.AddRelationship(domain.Relationship{
		Kind: domain.KindSpousal, PersonA: "x", PersonB: "y",
	})
	require.NoError(t, err)

	q := NewQueryService(tree, 0)
	_, ok, err := q.GenerationNumber("y", "x")
	require.NoError(t, err)
	assert.False(t, ok, "spousal-only connection has no generation number")
}

func TestQueryService_Find(t *testing.T) {
	q := NewQueryService(buildTree(t), 0)

	got, err := q.Find(domain.PersonQuery{Surname: "^Smith$"})
	require.NoError(t, err)
	require.Len(t, got, 4)

	got, err = q.Find(domain.PersonQuery{Given: "^A", Surname: "Smith"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got, err = q.Find(domain.PersonQuery{})
	require.NoError(t, err)
	assert.Len(t, got, 5, "empty query lists everyone")

	_, err = q.Find(domain.PersonQuery{Given: "("})
	assert.Error(t, err, "bad regex reported to the caller")
}

func TestQueryService_AnswersAfterMutation(t *testing.T) {
	tree := buildTree(t)
	q := NewQueryService(tree, 0)

	// Prime the index, then mutate the model underneath it.
	_, err := q.AncestorsOf("5", 0)
	require.NoError(t, err)

	_, err = tree.AddPerson(domain.Person{ID: "7", GivenName: "New"})
	require.NoError(t, err)
	_, err = tree.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "7", ChildID: "1",
	})
	require.NoError(t, err)

	// The stale index must be rebuilt before answering.
	got, err := q.AncestorsOf("5", 0)
	require.NoError(t, err)
	assert.Contains(t, ids(got), "7")
}
