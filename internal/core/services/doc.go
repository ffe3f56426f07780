// Package services implements the core use cases behind the driving
// ports: the graph index, the kinship query engine, the full-tree
// validator and the editor.
//
// Services depend only on domain and the port interfaces. The record
// model (domain.Tree) is the single source of truth; the Index is a
// version-stamped cache rebuilt whenever it goes stale.
package services
