package fuzzydate

import (
	"fmt"
	"strconv"
)

// Parse reads a date from its fixed-width canonical form: "YYYY", "YYYY/MM",
// or "YYYY/MM/DD". Components are sliced by position, so the parser keys on
// the input length rather than on delimiters:
//
//   - fewer than 4 characters: every component absent, no error
//   - 4 to 6 characters: year from positions 0-3
//   - 7 to 9 characters: year, plus month from positions 5-6
//   - exactly 10 characters: year, month, plus day from positions 8-9
//   - more than 10 characters: year and month only
//
// The separator positions are never inspected. A non-numeric component fails
// with ErrInvalidFormat; an extracted date is validated by rs before it is
// returned, so an out-of-range component surfaces as a validation error
// rather than a format error.
func (rs *Ruleset) Parse(s string) (Date, error) {
	if len(s) < 4 {
		return Date{}, nil
	}

	var d Date

	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %q is not numeric", ErrInvalidFormat, s[0:4])
	}
	d.year = somePart(year)

	if len(s) >= 7 {
		month, err := strconv.Atoi(s[5:7])
		if err != nil {
			return Date{}, fmt.Errorf("%w: month %q is not numeric", ErrInvalidFormat, s[5:7])
		}
		d.month = somePart(month)
	}

	if len(s) == 10 {
		day, err := strconv.Atoi(s[8:10])
		if err != nil {
			return Date{}, fmt.Errorf("%w: day %q is not numeric", ErrInvalidFormat, s[8:10])
		}
		d.day = somePart(day)
	}

	return rs.validate(d)
}

// Parse reads a date from its canonical form using the default ruleset.
func Parse(s string) (Date, error) {
	return Default().Parse(s)
}

// MustParse works like Parse but panics if parsing or validation fails.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse date %q: %v", s, err))
	}
	return d
}

// String renders the date for diagnostics. An absent year renders as
// "unknown date"; otherwise the canonical prefix is printed up to the first
// absent component. Production display belongs to a Formatter implementation,
// not to this method.
func (d Date) String() string {
	switch {
	case !d.year.ok:
		return "unknown date"
	case !d.month.ok:
		return fmt.Sprintf("%04d", d.year.n)
	case !d.day.ok:
		return fmt.Sprintf("%04d/%02d", d.year.n, d.month.n)
	default:
		return fmt.Sprintf("%04d/%02d/%02d", d.year.n, d.month.n, d.day.n)
	}
}
