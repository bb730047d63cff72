package fuzzydate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Date{}
	_ yaml.Unmarshaler = (*Date)(nil)
	_ yaml.Marshaler   = Range{}
	_ yaml.Unmarshaler = (*Range)(nil)
)

// MarshalYAML encodes the date as a canonical scalar. The unknown date
// encodes as null; gap dates fail with ErrNotCanonical.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsUnknown() {
		return nil, nil
	}
	if err := d.canonical(); err != nil {
		return nil, err
	}
	return d.String(), nil
}

// UnmarshalYAML decodes a canonical scalar using the default ruleset.
// A null node yields the unknown date.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*d = Date{}
		return nil
	}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar YAML node", ErrInvalidFormat)
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the range as a "<from>:<to>" scalar. The unknown
// range encodes as null.
func (r Range) MarshalYAML() (interface{}, error) {
	if r.IsUnknown() {
		return nil, nil
	}
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML decodes a "<from>:<to>" scalar using the default ruleset.
// A null node yields the unknown range.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*r = Range{}
		return nil
	}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar YAML node", ErrInvalidFormat)
	}
	parsed, err := ParseRange(value.Value)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
