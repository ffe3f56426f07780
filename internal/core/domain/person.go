package domain

import "strings"

// Sex disambiguates father/mother labelling in query output. It never
// restricts which relationships are valid.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex resolves free-form user input to a Sex. Anything starting
// with "m" is male, "f" is female, everything else (including empty)
// is unknown, matching how hand-edited files abbreviate the field.
func ParseSex(s string) Sex {
	switch {
	case strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "m"):
		return SexMale
	case strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "f"):
		return SexFemale
	default:
		return SexUnknown
	}
}

// IsValid reports whether s is one of the three defined values.
func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale || s == SexUnknown
}

// Field is a raw key-value pair carried through from the tree file.
// Unknown keys are preserved here so that saving a file never discards
// data written by a newer gtree or by hand.
type Field struct {
	Key   string
	Value string
}

// Person is an individual in the family tree.
type Person struct {
	// ID is the unique identifier. Assigned once, never reused.
	ID string

	// GivenName is the given (first) name. May be empty when unknown.
	GivenName string

	// Surname is the family name. May be empty when unknown.
	Surname string

	// Sex is male, female or unknown.
	Sex Sex

	// Birth is the birth date, possibly partial or absent.
	Birth PartialDate

	// Death is the death date, possibly partial or absent.
	Death PartialDate

	// Notes is free text.
	Notes string

	// Unknown holds unrecognised file fields, preserved in file order.
	Unknown []Field
}

// Name returns the display name, falling back to the id when both name
// parts are empty.
func (p *Person) Name() string {
	name := strings.TrimSpace(p.GivenName + " " + p.Surname)
	if name == "" {
		return "(" + p.ID + ")"
	}
	return name
}

// Lifespan renders "birth – death" for display, omitting absent parts.
func (p *Person) Lifespan() string {
	switch {
	case p.Birth.IsZero() && p.Death.IsZero():
		return ""
	case p.Death.IsZero():
		return "b. " + p.Birth.String()
	case p.Birth.IsZero():
		return "d. " + p.Death.String()
	default:
		return p.Birth.String() + " – " + p.Death.String()
	}
}
