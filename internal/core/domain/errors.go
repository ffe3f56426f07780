package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a mutation would violate a tree invariant.
	// The mutation is rejected and the tree is left unchanged.
	ErrValidation = errors.New("validation failed")

	// ErrFormat indicates a malformed tree file.
	ErrFormat = errors.New("malformed file")
)

// Invariant names a structural rule of the record model.
// ValidationError carries the invariant that an attempted mutation
// would have violated.
type Invariant string

const (
	// InvariantReference: every relationship endpoint must reference
	// an existing person.
	InvariantReference Invariant = "reference"

	// InvariantAcyclic: parent-child edges must form a DAG; no person
	// may be their own ancestor.
	InvariantAcyclic Invariant = "acyclic-lineage"

	// InvariantParentCount: a person has at most two parents.
	InvariantParentCount Invariant = "parent-count"

	// InvariantDuplicateEdge: the identical parent-child edge may not
	// be recorded twice.
	InvariantDuplicateEdge Invariant = "duplicate-edge"

	// InvariantSpousalOverlap: at most one spousal edge per pair of
	// persons over any given time range.
	InvariantSpousalOverlap Invariant = "spousal-overlap"

	// InvariantDateOrder: birth precedes death, marriage precedes
	// divorce, under partial-date ordering.
	InvariantDateOrder Invariant = "date-order"

	// InvariantFieldValue: a field value is malformed (bad date, bad
	// sex, self-referential edge).
	InvariantFieldValue Invariant = "field-value"
)

// NotFoundError reports an operation against an unknown entity id.
type NotFoundError struct {
	// Kind is the entity kind, "person" or "relationship".
	Kind string

	// ID is the id that was looked up.
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.ID, ErrNotFound)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError reports a rejected mutation, naming the violated
// invariant. The record model is unchanged when one is returned.
type ValidationError struct {
	// Invariant is the structural rule that would have been violated.
	Invariant Invariant

	// Detail describes the violation in terms of the entities involved.
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s invariant: %s", ErrValidation, e.Invariant, e.Detail)
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

// FormatError reports a structural problem in a tree file.
type FormatError struct {
	// Line is the 1-based line number of the offending input, or 0
	// when the problem is not tied to a single line.
	Line int

	// Msg describes the problem.
	Msg string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Unwrap allows errors.Is(err, ErrFormat).
func (e *FormatError) Unwrap() error { return ErrFormat }
