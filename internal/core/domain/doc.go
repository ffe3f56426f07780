// Package domain defines the core business entities for gtree.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Person: An individual in the family tree
//   - Relationship: A parent-child or spousal edge between persons
//   - PartialDate: A possibly incomplete calendar date
//   - Tree: The record model owning all persons and relationships
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
