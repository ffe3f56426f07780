package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Forms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PartialDate
	}{
		{"empty", "", PartialDate{}},
		{"year only", "1950", PartialDate{Year: 1950}},
		{"year month", "1950-06", PartialDate{Year: 1950, Month: 6}},
		{"full", "1950-06-13", PartialDate{Year: 1950, Month: 6, Day: 13}},
		{"approximate year", "~1890", PartialDate{Year: 1890, Approx: true}},
		{"approximate full", "~1890-01-02", PartialDate{Year: 1890, Month: 1, Day: 2, Approx: true}},
		{"surrounding space", "  1950-06 ", PartialDate{Year: 1950, Month: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{
		"abcd",
		"1950-13",
		"1950-00",
		"1950-06-32",
		"1950-06-13-07",
		"~",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.Error(t, err)
		})
	}
}

func TestPartialDate_RoundTrip(t *testing.T) {
	for _, input := range []string{"", "1950", "1950-06", "1950-06-13", "~1890", "~1890-01-02"} {
		d, err := ParseDate(input)
		require.NoError(t, err)

		back, err := ParseDate(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, back, "round trip of %q", input)
	}
}

func TestPartialDate_NotAfter(t *testing.T) {
	mk := func(s string) PartialDate {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"plain order", "1950", "1960", true},
		{"plain violation", "1960", "1950", false},
		{"same year is compatible", "1950", "1950", true},
		{"year vs later month same year", "1950-12", "1950", true},
		{"missing lower treated as earliest", "1950", "1950-01-01", true},
		{"full dates ordered", "1950-06-14", "1950-06-13", false},
		{"zero date always compatible", "", "1950", true},
		{"zero upper always compatible", "1950", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mk(tt.a).NotAfter(mk(tt.b)))
		})
	}
}

func TestYearsBetween(t *testing.T) {
	mk := func(s string) PartialDate {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"whole years", "1930", "2026", 96},
		{"birthday not yet reached", "1930-12-31", "2026-08-24", 95},
		{"birthday passed", "1930-01-02", "2026-08-24", 96},
		{"year only lower bounds", "1906", "2026-08-24", 120},
		{"same date", "1950-06-13", "1950-06-13", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearsBetween(mk(tt.a), mk(tt.b)))
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	mk := func(s string) PartialDate {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint", "1950", "1960", "1970", "1980", false},
		{"touching years overlap", "1950", "1960", "1960", "1970", true},
		{"nested", "1950", "1980", "1960", "1970", true},
		{"open ended overlaps future", "1950", "", "1990", "2000", true},
		{"open start overlaps past", "", "1960", "1940", "1950", true},
		{"both unbounded", "", "", "", "", true},
		{"ended before open range starts", "1950", "1960", "1970", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(mk(tt.aStart), mk(tt.aEnd), mk(tt.bStart), mk(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}
