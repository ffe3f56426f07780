package driving

import "github.com/gtree-project/gtree/internal/core/domain"

// EditorService mutates the record model on behalf of the CLI and the
// interactive shell. Every mutation is atomic: it either commits and
// bumps the model version, or fails with a *domain.ValidationError or
// *domain.NotFoundError and changes nothing.
type EditorService interface {
	// AddPerson creates a person and returns its freshly allocated id.
	AddPerson(p domain.Person) (string, error)

	// UpdatePerson replaces the fields of an existing person.
	UpdatePerson(id string, p domain.Person) error

	// RemovePerson deletes a person and every relationship that
	// references it.
	RemovePerson(id string) error

	// AddRelationship creates an edge and returns its id.
	AddRelationship(r domain.Relationship) (string, error)

	// UpdateRelationship replaces the fields of an existing edge.
	UpdateRelationship(id string, r domain.Relationship) error

	// RemoveRelationship deletes an edge.
	RemoveRelationship(id string) error

	// Save writes the tree back to the file it was loaded from.
	Save() error

	// Path returns the file path the tree was loaded from.
	Path() string
}
