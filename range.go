package fuzzydate

import (
	"fmt"
	"strings"
	"time"
)

// Range is an immutable pair of fuzzy date endpoints validated at
// construction. The zero value spans two unknown dates.
type Range struct {
	from Date
	to   Date
}

// NewRange builds a range from two endpoints validated by rs. Unknown
// endpoints are permitted on either side.
func (rs *Ruleset) NewRange(from, to Date) (Range, error) {
	r := Range{from: from, to: to}
	if err := rs.ValidateRange(r); err != nil {
		return Range{}, err
	}
	return r, nil
}

// NewRange builds a range validated by the default ruleset.
func NewRange(from, to Date) (Range, error) {
	return Default().NewRange(from, to)
}

// MustNewRange works like NewRange but panics if validation fails.
func MustNewRange(from, to Date) Range {
	r, err := NewRange(from, to)
	if err != nil {
		panic(fmt.Sprintf("Failed to construct range %s to %s: %v", from, to, err))
	}
	return r
}

// From returns the start endpoint.
func (r Range) From() Date {
	return r.from
}

// To returns the end endpoint.
func (r Range) To() Date {
	return r.to
}

// IsUnknown reports whether both endpoints are fully unknown.
func (r Range) IsUnknown() bool {
	return r.from.IsUnknown() && r.to.IsUnknown()
}

// Duration materializes both endpoints through Time and returns the signed
// difference end minus start. It inherits the lossy substitution of Time,
// and extremely distant endpoints saturate at the time.Duration limits.
func (r Range) Duration() time.Duration {
	return r.to.Time().Sub(r.from.Time())
}

// Days returns the duration in whole 24 hour days, truncated toward zero.
func (r Range) Days() int {
	return int(r.Duration() / (24 * time.Hour))
}

// Contains reports whether d falls inside the range under the fuzzy order,
// endpoints included. The unknown date is the least element of that order,
// so an unknown end admits only the unknown date itself.
func (r Range) Contains(d Date) bool {
	return d.Compare(r.from) >= 0 && d.Compare(r.to) <= 0
}

// Compare orders ranges lexicographically, start endpoint first.
func (r Range) Compare(o Range) int {
	if c := r.from.Compare(o.from); c != 0 {
		return c
	}
	return r.to.Compare(o.to)
}

// Equal reports whether both ranges have equal endpoints.
func (r Range) Equal(o Range) bool {
	return r.Compare(o) == 0
}

// String renders the range for diagnostics as "<from>:<to>", with unknown
// endpoints left empty.
func (r Range) String() string {
	var sb strings.Builder
	if !r.from.IsUnknown() {
		sb.WriteString(r.from.String())
	}
	sb.WriteByte(':')
	if !r.to.IsUnknown() {
		sb.WriteString(r.to.String())
	}
	return sb.String()
}

// ParseRange reads a range from the form "<from>:<to>", splitting on the
// first ':'. Each side goes through Parse, so an empty side yields an
// unknown endpoint. The assembled range is validated by rs.
func (rs *Ruleset) ParseRange(s string) (Range, error) {
	fromText, toText, found := strings.Cut(s, ":")
	if !found {
		return Range{}, fmt.Errorf("%w: range %q is missing the ':' separator", ErrInvalidFormat, s)
	}
	from, err := rs.Parse(fromText)
	if err != nil {
		return Range{}, err
	}
	to, err := rs.Parse(toText)
	if err != nil {
		return Range{}, err
	}
	return rs.NewRange(from, to)
}

// ParseRange reads a range using the default ruleset.
func ParseRange(s string) (Range, error) {
	return Default().ParseRange(s)
}
