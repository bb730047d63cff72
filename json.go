package fuzzydate

import (
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = Date{}
	_ json.Unmarshaler = (*Date)(nil)
	_ json.Marshaler   = Range{}
	_ json.Unmarshaler = (*Range)(nil)
)

// MarshalJSON encodes the date as an object of nullable components via
// Fields. Absent components are omitted, so the unknown date encodes as {}.
// Gap dates survive this form intact.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Fields())
}

// UnmarshalJSON decodes the Fields object form and validates the result
// with the default ruleset. A JSON null yields the unknown date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	parsed, err := FromFields(f)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the range as an object with from and to components.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

// UnmarshalJSON decodes the RangeFields object form and validates endpoints
// and range with the default ruleset. A JSON null yields the unknown range.
func (r *Range) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Range{}
		return nil
	}
	var f RangeFields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	parsed, err := RangeFromFields(f)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
