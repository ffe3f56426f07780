package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/services"
)

// buildFamily assembles a three-generation fixture:
//
//	grandfather(1) + grandmother(2)
//	  └ father(3) + mother(4)
//	      └ child(5)
func buildFamily(t *testing.T) (*domain.Tree, *services.QueryService) {
	t.Helper()
	tree := domain.NewTree()

	people := []domain.Person{
		{GivenName: "Arthur", Surname: "Hall", Sex: domain.SexMale, Birth: mustDate(t, "1930-01-02")},
		{GivenName: "Beryl", Surname: "Hall", Sex: domain.SexFemale, Birth: mustDate(t, "1933")},
		{GivenName: "Colin", Surname: "Hall", Sex: domain.SexMale, Birth: mustDate(t, "1958-06")},
		{GivenName: "Dora", Surname: "Hall", Sex: domain.SexFemale},
		{GivenName: "Edith", Surname: "Hall", Sex: domain.SexFemale, Birth: mustDate(t, "1985-03-14")},
	}
	for _, p := range people {
		_, err := tree.AddPerson(p)
		require.NoError(t, err)
	}

	rels := []domain.Relationship{
		{Kind: domain.KindSpousal, PersonA: "1", PersonB: "2"},
		{Kind: domain.KindParentChild, ParentID: "1", ChildID: "3"},
		{Kind: domain.KindParentChild, ParentID: "2", ChildID: "3"},
		{Kind: domain.KindSpousal, PersonA: "3", PersonB: "4"},
		{Kind: domain.KindParentChild, ParentID: "3", ChildID: "5"},
		{Kind: domain.KindParentChild, ParentID: "4", ChildID: "5"},
	}
	for _, r := range rels {
		_, err := tree.AddRelationship(r)
		require.NoError(t, err)
	}

	return tree, services.NewQueryService(tree, 0)
}

func mustDate(t *testing.T, s string) domain.PartialDate {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRenderer_AncestorChart_Shape(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(true)

	out, err := r.AncestorChart(q, "5", 0)
	require.NoError(t, err)
	plain := StripANSI(out)

	// Root first, then both parents, then grandparents nested under
	// the father's branch only.
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	assert.Equal(t, "Edith Hall (5)", lines[0])
	assert.Contains(t, plain, "|--Colin Hall (3)")
	assert.Contains(t, plain, "`--Dora Hall (4)")
	assert.Contains(t, plain, "|  |--Arthur Hall (1)")
	assert.Contains(t, plain, "|  `--Beryl Hall (2)")
}

func TestRenderer_AncestorChart_DepthLimit(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(true)

	out, err := r.AncestorChart(q, "5", 1)
	require.NoError(t, err)
	plain := StripANSI(out)

	assert.Contains(t, plain, "Colin Hall (3)")
	assert.NotContains(t, plain, "Arthur Hall")
}

func TestRenderer_DescendantChart_SpousesInline(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(true)

	out, err := r.DescendantChart(q, "1", 0)
	require.NoError(t, err)
	plain := StripANSI(out)

	assert.Contains(t, plain, "Arthur Hall (1)")
	assert.Contains(t, plain, "Spouse: Beryl Hall (2)")
	assert.Contains(t, plain, "Spouse: Dora Hall (4)")
	assert.Contains(t, plain, "Edith Hall (5)")
}

func TestRenderer_Chart_ContinuationRail(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(true)

	out, err := r.AncestorChart(q, "5", 0)
	require.NoError(t, err)
	plain := StripANSI(out)

	// Colin's birth detail sits on the pipe rail because Dora still
	// follows below him.
	assert.Contains(t, plain, "|  Birth: 1958-06")
}

func TestRenderer_Chart_UnknownPerson(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(true)

	_, err := r.AncestorChart(q, "99", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderer_UnicodeLines(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(false)

	out, err := r.AncestorChart(q, "5", 1)
	require.NoError(t, err)
	plain := StripANSI(out)

	assert.Contains(t, plain, "├──")
	assert.Contains(t, plain, "└──")
}
