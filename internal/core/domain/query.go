package domain

// PersonQuery filters the person list. Each non-empty field is a
// regular expression; a person matches when every given pattern
// matches the corresponding field.
type PersonQuery struct {
	// Given matches against the given name.
	Given string

	// Surname matches against the surname.
	Surname string

	// Any matches against the full display name, the id or the notes.
	Any string
}

// Empty reports whether no criteria are set, meaning "list everyone".
func (q PersonQuery) Empty() bool {
	return q.Given == "" && q.Surname == "" && q.Any == ""
}
