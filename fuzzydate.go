package fuzzydate

import (
	"fmt"
	"time"
)

// part is an optional date component. The zero value is absent; populated
// parts are built through somePart so that equal dates stay comparable
// with ==.
type part struct {
	n  int
	ok bool
}

func somePart(n int) part {
	return part{n: n, ok: true}
}

// Date is an immutable calendar date whose year, month, and day may each be
// unknown. The zero value is the fully unknown date. Every other value is
// produced by a validating constructor, so a Date in circulation never
// violates the ruleset it was built under.
type Date struct {
	year  part
	month part
	day   part
}

// Unknown returns the fully unknown date. It is the zero value and always
// valid regardless of the active ruleset.
func Unknown() Date {
	return Date{}
}

// Year returns the year component and whether it is populated.
func (d Date) Year() (int, bool) {
	return d.year.n, d.year.ok
}

// Month returns the month component and whether it is populated.
func (d Date) Month() (int, bool) {
	return d.month.n, d.month.ok
}

// Day returns the day component and whether it is populated.
func (d Date) Day() (int, bool) {
	return d.day.n, d.day.ok
}

func (d Date) HasYear() bool  { return d.year.ok }
func (d Date) HasMonth() bool { return d.month.ok }
func (d Date) HasDay() bool   { return d.day.ok }

// IsUnknown reports whether every component is absent.
func (d Date) IsUnknown() bool {
	return !d.year.ok && !d.month.ok && !d.day.ok
}

// Specificity counts the leading populated components: 1 for a bare year,
// 2 for year and month, 3 for a full date. Components behind a gap do not
// count, so a day without a month adds nothing.
func (d Date) Specificity() int {
	if !d.year.ok {
		return 0
	}
	if !d.month.ok {
		return 1
	}
	if !d.day.ok {
		return 2
	}
	return 3
}

// New builds a fully specified date validated by rs.
func (rs *Ruleset) New(year, month, day int) (Date, error) {
	return rs.validate(Date{year: somePart(year), month: somePart(month), day: somePart(day)})
}

// NewYearMonth builds a date with the day left unknown, validated by rs.
func (rs *Ruleset) NewYearMonth(year, month int) (Date, error) {
	return rs.validate(Date{year: somePart(year), month: somePart(month)})
}

// NewYear builds a date with only the year populated, validated by rs.
func (rs *Ruleset) NewYear(year int) (Date, error) {
	return rs.validate(Date{year: somePart(year)})
}

// FromTime builds a fully specified date from the calendar date of t,
// validated by rs.
func (rs *Ruleset) FromTime(t time.Time) (Date, error) {
	return rs.New(t.Year(), int(t.Month()), t.Day())
}

// Today builds a fully specified date from the current local calendar date,
// validated by rs.
func (rs *Ruleset) Today() (Date, error) {
	return rs.FromTime(time.Now())
}

// New builds a fully specified date validated by the default ruleset.
func New(year, month, day int) (Date, error) {
	return Default().New(year, month, day)
}

// NewYearMonth builds a date with the day left unknown, validated by the
// default ruleset.
func NewYearMonth(year, month int) (Date, error) {
	return Default().NewYearMonth(year, month)
}

// NewYear builds a date with only the year populated, validated by the
// default ruleset.
func NewYear(year int) (Date, error) {
	return Default().NewYear(year)
}

// FromTime builds a fully specified date from the calendar date of t,
// validated by the default ruleset.
func FromTime(t time.Time) (Date, error) {
	return Default().FromTime(t)
}

// Today builds a fully specified date from the current local calendar date,
// validated by the default ruleset.
func Today() (Date, error) {
	return Default().Today()
}

// MustNew works like New but panics if validation fails.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("Failed to construct date %04d/%02d/%02d: %v", year, month, day, err))
	}
	return d
}
