package gtr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtree-project/gtree/internal/core/domain"
)

const sampleFile = `gtree-format: 1

# The Smith family.

PERSON
id: 1
given-name: Ada
surname: Smith
sex: female
born: 1950-06
notes: Emigrated in 1972.\nKept the family bible.

PERSON
id: 2
given-name: Ben
surname: Jones
sex: male
born: ~1948
died: 2020-03-14

PERSON
id: 3
given-name: Cara
surname: Smith

REL
id: r1
kind: parent-child
parent: 1
child: 3

REL
id: r2
kind: parent-child
parent: 2
child: 3

REL
id: r3
kind: spousal
a: 1
b: 2
start: 1970
status: current
`

func TestParse_Sample(t *testing.T) {
	tree, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, 3, tree.PersonCount())
	assert.Equal(t, 3, tree.RelationshipCount())

	ada, err := tree.Person("1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", ada.GivenName)
	assert.Equal(t, domain.SexFemale, ada.Sex)
	assert.Equal(t, domain.PartialDate{Year: 1950, Month: 6}, ada.Birth)
	assert.Equal(t, "Emigrated in 1972.\nKept the family bible.", ada.Notes)

	ben, err := tree.Person("2")
	require.NoError(t, err)
	assert.True(t, ben.Birth.Approx)

	r, err := tree.Relationship("r3")
	require.NoError(t, err)
	assert.Equal(t, domain.KindSpousal, r.Kind)
	assert.Equal(t, domain.StatusCurrent, r.Status)
}

func TestParse_OptionalFieldsDefault(t *testing.T) {
	tree, err := Parse([]byte("gtree-format: 1\n\nPERSON\nid: 1\n"))
	require.NoError(t, err)

	p, err := tree.Person("1")
	require.NoError(t, err)
	assert.Equal(t, domain.SexUnknown, p.Sex)
	assert.True(t, p.Birth.IsZero())
	assert.Empty(t, p.Notes)
}

func TestParse_UnknownKeysPreserved(t *testing.T) {
	input := "gtree-format: 1\n\nPERSON\nid: 1\nplace-of-birth: Leeds\noccupation: weaver\n"
	tree, err := Parse([]byte(input))
	require.NoError(t, err)

	p, err := tree.Person("1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Field{
		{Key: "place-of-birth", Value: "Leeds"},
		{Key: "occupation", Value: "weaver"},
	}, p.Unknown)
}

func TestParse_RelationshipWithoutIDGetsOne(t *testing.T) {
	input := "gtree-format: 1\n\nPERSON\nid: 1\n\nPERSON\nid: 2\n\nREL\nkind: spousal\na: 1\nb: 2\n"
	tree, err := Parse([]byte(input))
	require.NoError(t, err)

	rels := tree.Relationships()
	require.Len(t, rels, 1)
	assert.NotEmpty(t, rels[0].ID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "missing header",
			input:    "PERSON\nid: 1\n",
			wantLine: 1,
			wantMsg:  "header",
		},
		{
			name:     "unsupported version",
			input:    "gtree-format: 2\n",
			wantLine: 1,
			wantMsg:  "unsupported format version",
		},
		{
			name:     "unknown block tag",
			input:    "gtree-format: 1\n\nANIMAL\nid: 1\n",
			wantLine: 3,
			wantMsg:  "unknown block tag",
		},
		{
			name:     "bad key line",
			input:    "gtree-format: 1\n\nPERSON\nid: 1\nno separator here\n",
			wantLine: 5,
			wantMsg:  "key: value",
		},
		{
			name:     "person without id",
			input:    "gtree-format: 1\n\nPERSON\ngiven-name: Ada\n",
			wantLine: 3,
			wantMsg:  "no id",
		},
		{
			name:     "duplicate person id",
			input:    "gtree-format: 1\n\nPERSON\nid: 1\n\nPERSON\nid: 1\n",
			wantLine: 6,
			wantMsg:  "already exists",
		},
		{
			name:     "duplicate key in block",
			input:    "gtree-format: 1\n\nPERSON\nid: 1\nsurname: Smith\nsurname: Jones\n",
			wantLine: 6,
			wantMsg:  "duplicate key",
		},
		{
			name:     "bad date",
			input:    "gtree-format: 1\n\nPERSON\nid: 1\nborn: 1950-13\n",
			wantLine: 5,
			wantMsg:  "out of range",
		},
		{
			name:     "unknown relationship endpoint",
			input:    "gtree-format: 1\n\nPERSON\nid: 1\n\nREL\nkind: parent-child\nparent: 1\nchild: 9\n",
			wantLine: 6,
			wantMsg:  "unknown person",
		},
		{
			name:     "rel without kind",
			input:    "gtree-format: 1\n\nREL\nparent: 1\nchild: 2\n",
			wantLine: 3,
			wantMsg:  "no kind",
		},
		{
			name:     "bad kind",
			input:    "gtree-format: 1\n\nREL\nkind: sibling\n",
			wantLine: 4,
			wantMsg:  "unknown relationship kind",
		},
		{
			name: "third parent",
			input: "gtree-format: 1\n\n" +
				"PERSON\nid: 1\n\nPERSON\nid: 2\n\nPERSON\nid: 3\n\nPERSON\nid: 4\n\n" +
				"REL\nkind: parent-child\nparent: 1\nchild: 4\n\n" +
				"REL\nkind: parent-child\nparent: 2\nchild: 4\n\n" +
				"REL\nkind: parent-child\nparent: 3\nchild: 4\n",
			wantLine: 25,
			wantMsg:  "parent-count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)

			var ferr *domain.FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.wantLine, ferr.Line)
			assert.Contains(t, strings.ToLower(ferr.Msg), tt.wantMsg)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestParse_EscapedValues(t *testing.T) {
	input := "gtree-format: 1\n\nPERSON\nid: 1\nnotes: a\\nb\\\\c\n"
	tree, err := Parse([]byte(input))
	require.NoError(t, err)

	p, err := tree.Person("1")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\\c", p.Notes)
}

func TestParse_CRLFInput(t *testing.T) {
	input := strings.ReplaceAll("gtree-format: 1\n\nPERSON\nid: 1\nsurname: Smith\n", "\n", "\r\n")
	tree, err := Parse([]byte(input))
	require.NoError(t, err)

	p, err := tree.Person("1")
	require.NoError(t, err)
	assert.Equal(t, "Smith", p.Surname)
}
