package fuzzydate

import (
	"encoding"
	"fmt"
)

var (
	_ encoding.TextMarshaler   = Date{}
	_ encoding.TextUnmarshaler = (*Date)(nil)
	_ encoding.TextMarshaler   = Range{}
	_ encoding.TextUnmarshaler = (*Range)(nil)
)

// MarshalText renders the date in its canonical fixed-width form. The
// unknown date marshals to an empty string. Gap dates cannot be expressed
// in that form and fail with ErrNotCanonical; use Fields for full fidelity.
func (d Date) MarshalText() ([]byte, error) {
	if err := d.canonical(); err != nil {
		return nil, err
	}
	if d.IsUnknown() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText parses the canonical form using the default ruleset. An
// empty input yields the unknown date.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText renders the range as "<from>:<to>" with both endpoints in
// canonical form. Unknown endpoints are left empty.
func (r Range) MarshalText() ([]byte, error) {
	from, err := r.from.MarshalText()
	if err != nil {
		return nil, err
	}
	to, err := r.to.MarshalText()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(from)+len(to)+1)
	out = append(out, from...)
	out = append(out, ':')
	out = append(out, to...)
	return out, nil
}

// UnmarshalText parses a "<from>:<to>" range using the default ruleset.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// canonical reports whether the date survives a text round trip. A populated
// component behind an absent one has no place in the fixed-width form.
func (d Date) canonical() error {
	if d.month.ok && !d.year.ok {
		return fmt.Errorf("%w: month without year", ErrNotCanonical)
	}
	if d.day.ok && !d.month.ok {
		return fmt.Errorf("%w: day without month", ErrNotCanonical)
	}
	return nil
}
