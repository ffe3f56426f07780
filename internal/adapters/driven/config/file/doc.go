// Package file provides the TOML-backed ConfigStore.
//
// Preferences live in ~/.gtree/config.toml: the last opened tree
// file, the line-drawing character set and the validation plausibility
// threshold. The store flattens nested TOML tables into dot-notation
// keys ("render.ascii") and persists on every Set.
package file
