package gtr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/logger"
)

// FormatVersion is the on-disk format version this codec reads and
// writes.
const FormatVersion = "1"

// headerKey is the key of the mandatory first line of every file.
const headerKey = "gtree-format"

// Block type tags.
const (
	tagPerson = "PERSON"
	tagRel    = "REL"
)

// Person field keys, fixed by the version-1 grammar.
const (
	keyID        = "id"
	keyGivenName = "given-name"
	keySurname   = "surname"
	keySex       = "sex"
	keyBorn      = "born"
	keyDied      = "died"
	keyNotes     = "notes"
)

// Relationship field keys.
const (
	keyKind    = "kind"
	keyParent  = "parent"
	keyChild   = "child"
	keySpouseA = "a"
	keySpouseB = "b"
	keyStart   = "start"
	keyEnd     = "end"
	keyStatus  = "status"
)

// line is one meaningful input line with its 1-based position.
type line struct {
	num  int
	text string
}

// block is one tagged group of key-value lines.
type block struct {
	tag   string
	num   int
	lines []line
}

// Parse reads a version-1 gtree file into a fresh record model.
// Structural problems (bad header, unknown tag, missing id, duplicate
// id, unknown relationship endpoint, malformed key line) surface as
// *domain.FormatError carrying the offending line number. Missing
// optional fields default; nothing is ever silently dropped.
func Parse(data []byte) (*domain.Tree, error) {
	blocks, err := scan(data)
	if err != nil {
		return nil, err
	}

	tree := domain.NewTree()

	// Persons first, whole file: relationship endpoints may be
	// declared in any order.
	for _, b := range blocks {
		if b.tag != tagPerson {
			continue
		}
		if err := parsePerson(tree, b); err != nil {
			return nil, err
		}
	}
	for _, b := range blocks {
		if b.tag != tagRel {
			continue
		}
		if err := parseRel(tree, b); err != nil {
			return nil, err
		}
	}

	logger.Debug("parsed %d persons and %d relationships",
		tree.PersonCount(), tree.RelationshipCount())
	return tree, nil
}

// scan splits the input into blocks, validating the header line.
func scan(data []byte) ([]block, error) {
	var (
		blocks     []block
		cur        *block
		headerSeen bool
	)

	flush := func() {
		if cur != nil {
			blocks = append(blocks, *cur)
			cur = nil
		}
	}

	for i, raw := range strings.Split(string(data), "\n") {
		num := i + 1
		text := strings.TrimRight(raw, "\r")

		if strings.TrimSpace(text) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(text), "#") {
			continue
		}

		if !headerSeen {
			key, value, err := splitKeyValue(text, num)
			if err != nil || key != headerKey {
				return nil, &domain.FormatError{Line: num,
					Msg: fmt.Sprintf("expected header %q before any content", headerKey+": "+FormatVersion)}
			}
			if value != FormatVersion {
				return nil, &domain.FormatError{Line: num,
					Msg: fmt.Sprintf("unsupported format version %q (this gtree reads version %s)", value, FormatVersion)}
			}
			headerSeen = true
			continue
		}

		if cur == nil {
			if text != tagPerson && text != tagRel {
				return nil, &domain.FormatError{Line: num,
					Msg: fmt.Sprintf("unknown block tag %q (expected %s or %s)", text, tagPerson, tagRel)}
			}
			cur = &block{tag: text, num: num}
			continue
		}
		cur.lines = append(cur.lines, line{num: num, text: text})
	}
	flush()

	if !headerSeen {
		return nil, &domain.FormatError{Line: 1,
			Msg: fmt.Sprintf("missing header %q", headerKey+": "+FormatVersion)}
	}
	return blocks, nil
}

// splitKeyValue splits "key: value" and unescapes the value.
func splitKeyValue(text string, num int) (string, string, error) {
	idx := strings.Index(text, ":")
	if idx <= 0 {
		return "", "", &domain.FormatError{Line: num,
			Msg: fmt.Sprintf("expected \"key: value\", got %q", text)}
	}
	key := strings.TrimSpace(text[:idx])
	value := strings.TrimPrefix(text[idx+1:], " ")
	return key, unescape(value), nil
}

func parsePerson(tree *domain.Tree, b block) error {
	var p domain.Person
	seen := make(map[string]int)

	for _, ln := range b.lines {
		key, value, err := splitKeyValue(ln.text, ln.num)
		if err != nil {
			return err
		}

		known := true
		switch key {
		case keyID:
			p.ID = value
		case keyGivenName:
			p.GivenName = value
		case keySurname:
			p.Surname = value
		case keySex:
			p.Sex = domain.ParseSex(value)
		case keyBorn:
			if p.Birth, err = domain.ParseDate(value); err != nil {
				return &domain.FormatError{Line: ln.num, Msg: err.Error()}
			}
		case keyDied:
			if p.Death, err = domain.ParseDate(value); err != nil {
				return &domain.FormatError{Line: ln.num, Msg: err.Error()}
			}
		case keyNotes:
			p.Notes = value
		default:
			known = false
			p.Unknown = append(p.Unknown, domain.Field{Key: key, Value: value})
		}

		if known {
			if prev, dup := seen[key]; dup {
				return &domain.FormatError{Line: ln.num,
					Msg: fmt.Sprintf("duplicate key %q (first on line %d)", key, prev)}
			}
			seen[key] = ln.num
		}
	}

	if p.ID == "" {
		return &domain.FormatError{Line: b.num, Msg: "PERSON block has no id"}
	}
	if _, err := tree.AddPerson(p); err != nil {
		return &domain.FormatError{Line: b.num, Msg: err.Error()}
	}
	return nil
}

func parseRel(tree *domain.Tree, b block) error {
	var r domain.Relationship
	seen := make(map[string]int)

	for _, ln := range b.lines {
		key, value, err := splitKeyValue(ln.text, ln.num)
		if err != nil {
			return err
		}

		known := true
		switch key {
		case keyID:
			r.ID = value
		case keyKind:
			r.Kind = domain.RelKind(value)
			if !r.Kind.IsValid() {
				return &domain.FormatError{Line: ln.num,
					Msg: fmt.Sprintf("unknown relationship kind %q", value)}
			}
		case keyParent:
			r.ParentID = value
		case keyChild:
			r.ChildID = value
		case keySpouseA:
			r.PersonA = value
		case keySpouseB:
			r.PersonB = value
		case keyStart:
			if r.Start, err = domain.ParseDate(value); err != nil {
				return &domain.FormatError{Line: ln.num, Msg: err.Error()}
			}
		case keyEnd:
			if r.End, err = domain.ParseDate(value); err != nil {
				return &domain.FormatError{Line: ln.num, Msg: err.Error()}
			}
		case keyStatus:
			r.Status = domain.SpousalStatus(value)
			if !r.Status.IsValid() {
				return &domain.FormatError{Line: ln.num,
					Msg: fmt.Sprintf("unknown spousal status %q", value)}
			}
		default:
			known = false
			r.Unknown = append(r.Unknown, domain.Field{Key: key, Value: value})
		}

		if known {
			if prev, dup := seen[key]; dup {
				return &domain.FormatError{Line: ln.num,
					Msg: fmt.Sprintf("duplicate key %q (first on line %d)", key, prev)}
			}
			seen[key] = ln.num
		}
	}

	if r.Kind == "" {
		return &domain.FormatError{Line: b.num, Msg: "REL block has no kind"}
	}
	if r.ID == "" {
		// Hand-written edges may omit the id; one is minted here and
		// written back on the next save.
		r.ID = uuid.NewString()
	}

	// The record model enforces every edge invariant (unknown
	// endpoint, parent count, cycles, spousal overlap); its rejection
	// becomes a format error at this block.
	if _, err := tree.AddRelationship(r); err != nil {
		return &domain.FormatError{Line: b.num, Msg: err.Error()}
	}
	return nil
}

// unescape reverses the value escaping: `\n` to newline, `\\` to
// backslash. Unrecognised escapes pass through untouched.
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
