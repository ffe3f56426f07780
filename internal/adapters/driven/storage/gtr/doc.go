// Package gtr implements the gtree on-disk text format, version 1,
// and the file-backed TreeStore built on it.
//
// # Format
//
// A .gtr file is UTF-8 text. The first non-blank, non-comment line
// must be the header:
//
//	gtree-format: 1
//
// Files declaring any other version are rejected rather than guessed
// at. The rest of the file is blank-line-separated blocks. A block's
// first line is its type tag, PERSON or REL; every following line is
// "key: value". Lines whose first non-space character is '#' are
// comments and are ignored (they are not preserved on save).
//
// Person keys: id (required), given-name, surname, sex, born, died,
// notes. Relationship keys: id, kind (required), then parent and
// child for parent-child edges, or a, b, start, end and status for
// spousal edges. Dates use the forms YYYY, YYYY-MM and YYYY-MM-DD,
// optionally prefixed with ~ for approximate.
//
// Values escape backslash as `\\` and newline as `\n`; nothing else
// is escaped. Unknown keys are preserved verbatim and re-emitted on
// save, so files written by a newer gtree survive a round trip
// through an older one.
//
// Serialisation is canonical: persons sorted by id, parent-child
// edges before spousal edges in canonical endpoint order, fixed key
// order within each block. Saving an unmodified tree is
// byte-identical, which keeps hand-edited files diffable.
//
// This grammar is frozen. Extensions add new keys (which old readers
// preserve) or bump the declared version; they never change the
// meaning of version 1.
package gtr
