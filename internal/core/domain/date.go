package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PartialDate is a possibly incomplete calendar date: year only,
// year-month, or a full date. Hand-maintained trees frequently record
// nothing more precise than a year, so missing components are first
// class rather than an error.
//
// The zero value means "no date recorded".
type PartialDate struct {
	// Year is the calendar year. 0 means the date is absent entirely.
	Year int

	// Month is 1-12, or 0 when unknown.
	Month int

	// Day is 1-31, or 0 when unknown.
	Day int

	// Approx marks the date as approximate ("~1890").
	Approx bool
}

// IsZero reports whether no date is recorded at all.
func (d PartialDate) IsZero() bool {
	return d.Year == 0
}

// ParseDate parses the textual forms "YYYY", "YYYY-MM" and
// "YYYY-MM-DD", each optionally prefixed with "~" for approximate.
// An empty string parses to the zero date.
func ParseDate(s string) (PartialDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartialDate{}, nil
	}

	var d PartialDate
	if strings.HasPrefix(s, "~") {
		d.Approx = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "~"))
	}

	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return PartialDate{}, fmt.Errorf("date %q: too many components", s)
	}

	fields := []*int{&d.Year, &d.Month, &d.Day}
	limits := [][2]int{{1, 9999}, {1, 12}, {1, 31}}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return PartialDate{}, fmt.Errorf("date %q: bad component %q", s, part)
		}
		if n < limits[i][0] || n > limits[i][1] {
			return PartialDate{}, fmt.Errorf("date %q: component %d out of range", s, n)
		}
		*fields[i] = n
	}

	return d, nil
}

// String renders the canonical textual form understood by ParseDate.
// The zero date renders as the empty string.
func (d PartialDate) String() string {
	if d.IsZero() {
		return ""
	}

	var b strings.Builder
	if d.Approx {
		b.WriteByte('~')
	}
	fmt.Fprintf(&b, "%04d", d.Year)
	if d.Month != 0 {
		fmt.Fprintf(&b, "-%02d", d.Month)
		if d.Day != 0 {
			fmt.Fprintf(&b, "-%02d", d.Day)
		}
	}
	return b.String()
}

// lowerKey returns a comparable ordinal treating missing components as
// the earliest possible value.
func (d PartialDate) lowerKey() int {
	m, day := d.Month, d.Day
	if m == 0 {
		m = 1
	}
	if day == 0 {
		day = 1
	}
	return d.Year*10000 + m*100 + day
}

// upperKey returns a comparable ordinal treating missing components as
// the latest possible value.
func (d PartialDate) upperKey() int {
	m, day := d.Month, d.Day
	if m == 0 {
		m = 12
	}
	if day == 0 {
		day = 31
	}
	return d.Year*10000 + m*100 + day
}

// NotAfter reports whether d could plausibly precede or equal other,
// i.e. the earliest reading of d is not after the latest reading of
// other. A zero date on either side always satisfies the ordering.
func (d PartialDate) NotAfter(other PartialDate) bool {
	if d.IsZero() || other.IsZero() {
		return true
	}
	return d.lowerKey() <= other.upperKey()
}

// RangesOverlap reports whether the ranges [aStart, aEnd] and
// [bStart, bEnd] could overlap under partial-date ordering. A zero
// start is treated as unbounded past, a zero end as unbounded future.
func RangesOverlap(aStart, aEnd, bStart, bEnd PartialDate) bool {
	return aStart.NotAfter(bEnd) && bStart.NotAfter(aEnd)
}

// YearsBetween returns the number of whole years from d to other using
// the earliest reading of each. Used for plausibility warnings only.
func YearsBetween(d, other PartialDate) int {
	return (other.lowerKey() - d.lowerKey()) / 10000
}
