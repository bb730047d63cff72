package fuzzydate

import "time"

// AddYears shifts the year by the given count and validates the result with
// rs. An absent year leaves the date unchanged; the month and day are never
// touched, so shifting a leap day to a common year fails validation.
func (rs *Ruleset) AddYears(d Date, years int) (Date, error) {
	y, ok := d.Year()
	if !ok {
		return d, nil
	}
	shifted := d
	shifted.year = somePart(y + years)
	return rs.validate(shifted)
}

// AddMonths shifts the month by the given count. An absent month leaves the
// date unchanged. A populated month is materialized through Time, shifted
// with time.AddDate, and rebuilt fully specified, so a previously absent
// year or day comes back populated as 1. Day overflow normalizes into the
// following month, matching time.AddDate.
func (rs *Ruleset) AddMonths(d Date, months int) (Date, error) {
	if !d.HasMonth() {
		return d, nil
	}
	t := d.Time().AddDate(0, months, 0)
	return rs.FromTime(t)
}

// AddDays shifts the day by the given count. An absent day leaves the date
// unchanged. A populated day goes through the same materialization as
// AddMonths, with the same synthetic population of absent components.
func (rs *Ruleset) AddDays(d Date, days int) (Date, error) {
	if !d.HasDay() {
		return d, nil
	}
	t := d.Time().AddDate(0, 0, days)
	return rs.FromTime(t)
}

// AddYears shifts the year using the default ruleset for validation.
func (d Date) AddYears(years int) (Date, error) {
	return Default().AddYears(d, years)
}

// AddMonths shifts the month using the default ruleset for validation.
func (d Date) AddMonths(months int) (Date, error) {
	return Default().AddMonths(d, months)
}

// AddDays shifts the day using the default ruleset for validation.
func (d Date) AddDays(days int) (Date, error) {
	return Default().AddDays(d, days)
}

// IsLeapYear reports whether the year component is a Gregorian leap year.
// An unknown year is never a leap year.
func (d Date) IsLeapYear() bool {
	y, ok := d.Year()
	return ok && leapYear(y)
}

// Time materializes the date as midnight UTC, substituting 1 for every
// absent component. Years below 1 are floored to 1 as well, so the result
// always lands in the common era. The substitution is lossy and exists for
// calendar arithmetic, not for display.
func (d Date) Time() time.Time {
	year, month, day := 1, 1, 1
	if y, ok := d.Year(); ok && y >= 1 {
		year = y
	}
	if m, ok := d.Month(); ok {
		month = m
	}
	if dd, ok := d.Day(); ok {
		day = dd
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func leapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
