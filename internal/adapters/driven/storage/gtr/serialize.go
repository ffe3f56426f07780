package gtr

import (
	"strings"

	"github.com/gtree-project/gtree/internal/core/domain"
)

// Serialize renders the tree in canonical version-1 form. The output
// is deterministic: persons sorted by id, parent-child edges before
// spousal edges in canonical endpoint order, fixed key order within
// blocks. Serialising the same tree twice is byte-identical.
func Serialize(tree *domain.Tree) []byte {
	var b strings.Builder
	b.WriteString(headerKey + ": " + FormatVersion + "\n")

	for _, p := range tree.Persons() {
		b.WriteString("\n" + tagPerson + "\n")
		writeField(&b, keyID, p.ID)
		writeField(&b, keyGivenName, p.GivenName)
		writeField(&b, keySurname, p.Surname)
		if p.Sex != domain.SexUnknown && p.Sex != "" {
			writeField(&b, keySex, string(p.Sex))
		}
		writeField(&b, keyBorn, p.Birth.String())
		writeField(&b, keyDied, p.Death.String())
		writeField(&b, keyNotes, p.Notes)
		writeUnknown(&b, p.Unknown)
	}

	for _, r := range tree.Relationships() {
		b.WriteString("\n" + tagRel + "\n")
		writeField(&b, keyID, r.ID)
		writeField(&b, keyKind, string(r.Kind))
		switch r.Kind {
		case domain.KindParentChild:
			writeField(&b, keyParent, r.ParentID)
			writeField(&b, keyChild, r.ChildID)
		case domain.KindSpousal:
			writeField(&b, keySpouseA, r.PersonA)
			writeField(&b, keySpouseB, r.PersonB)
			writeField(&b, keyStart, r.Start.String())
			writeField(&b, keyEnd, r.End.String())
			if r.Status != domain.StatusUnknown && r.Status != "" {
				writeField(&b, keyStatus, string(r.Status))
			}
		}
		writeUnknown(&b, r.Unknown)
	}

	return []byte(b.String())
}

// writeField emits one "key: value" line, skipping empty values:
// absent optional fields stay absent, which keeps hand-edited files
// compact and the output canonical.
func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key + ": " + escape(value) + "\n")
}

// writeUnknown re-emits preserved foreign fields in their original
// order, after all known keys.
func writeUnknown(b *strings.Builder, fields []domain.Field) {
	for _, f := range fields {
		b.WriteString(f.Key + ": " + escape(f.Value) + "\n")
	}
}

// escape protects newlines and backslashes in free-text values.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
