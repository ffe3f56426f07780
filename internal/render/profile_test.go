package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtree-project/gtree/internal/core/domain"
)

func TestRenderer_Profile_Sections(t *testing.T) {
	tree, q := buildFamily(t)

	// A half-sibling of Edith through Colin only.
	_, err := tree.AddPerson(domain.Person{GivenName: "Frank", Surname: "Hall"})
	require.NoError(t, err)
	_, err = tree.AddRelationship(domain.Relationship{
		Kind: domain.KindParentChild, ParentID: "3", ChildID: "6",
	})
	require.NoError(t, err)

	out, err := NewRenderer(true).Profile(q, "5")
	require.NoError(t, err)
	plain := StripANSI(out)

	assert.Contains(t, plain, "Edith Hall")
	assert.Contains(t, plain, "ID:")
	assert.Contains(t, plain, "Birth:")
	assert.Contains(t, plain, "1985-03-14")

	assert.Contains(t, plain, "Parents:")
	assert.Contains(t, plain, "Colin Hall (3)")
	assert.Contains(t, plain, "Dora Hall (4)")
	assert.Contains(t, plain, "Siblings:")
	assert.Contains(t, plain, "Frank Hall (6) [half]")
	assert.NotContains(t, plain, "Spouses:")
}

func TestRenderer_Profile_UnknownKeysShown(t *testing.T) {
	tree, q := buildFamily(t)
	p, err := tree.Person("5")
	require.NoError(t, err)
	updated := *p
	updated.Unknown = []domain.Field{{Key: "occupation", Value: "engineer"}}
	require.NoError(t, tree.UpdatePerson("5", updated))

	out, err := NewRenderer(true).Profile(q, "5")
	require.NoError(t, err)
	assert.Contains(t, StripANSI(out), "occupation:")
	assert.Contains(t, StripANSI(out), "engineer")
}

func TestRenderer_Path(t *testing.T) {
	_, q := buildFamily(t)
	r := NewRenderer(true)

	from, err := q.Person("2")
	require.NoError(t, err)
	steps, err := q.RelationshipPath("2", "4")
	require.NoError(t, err)

	plain := StripANSI(r.Path(from, steps))
	assert.Contains(t, plain, "Beryl Hall (2)")
	assert.Contains(t, plain, "-> blood relative of Colin Hall (3)")
	assert.Contains(t, plain, "-> spouse of Dora Hall (4)")
}

func TestRenderer_Path_NotConnected(t *testing.T) {
	_, q := buildFamily(t)
	from, err := q.Person("1")
	require.NoError(t, err)

	assert.Equal(t, "not connected\n", NewRenderer(true).Path(from, nil))
}

func TestRenderer_Issues_ErrorsFirst(t *testing.T) {
	out := NewRenderer(true).Issues([]domain.ValidationIssue{
		{Severity: domain.SeverityWarning, PersonID: "1", Message: "probably deceased"},
		{Severity: domain.SeverityError, RelationshipID: "r1", Message: "dangling reference"},
	})
	plain := StripANSI(out)

	errPos := strings.Index(plain, "error")
	warnPos := strings.Index(plain, "warning")
	require.GreaterOrEqual(t, errPos, 0)
	require.GreaterOrEqual(t, warnPos, 0)
	assert.Less(t, errPos, warnPos)
	assert.Contains(t, plain, "relationship r1: dangling reference")
	assert.Contains(t, plain, "person 1: probably deceased")
}

func TestRenderer_Issues_Clean(t *testing.T) {
	assert.Equal(t, "no issues found\n", NewRenderer(true).Issues(nil))
}
