// Package driven defines the interfaces the core requires from
// infrastructure adapters (secondary/driven ports).
//
// The core services depend on these interfaces; the adapters under
// internal/adapters/driven implement them. This keeps the record model
// and query engine free of any knowledge of files, formats or
// configuration storage.
package driven
