package fuzzydate

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	_ bson.ValueMarshaler   = Date{}
	_ bson.ValueUnmarshaler = (*Date)(nil)
	_ bson.ValueMarshaler   = Range{}
	_ bson.ValueUnmarshaler = (*Range)(nil)
)

// MarshalBSONValue encodes the date as an embedded document of nullable
// components via Fields. Gap dates survive this form intact.
func (d Date) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(d.Fields())
	return byte(typ), data, err
}

// UnmarshalBSONValue decodes the Fields document form and validates the
// result with the default ruleset. A BSON null yields the unknown date.
func (d *Date) UnmarshalBSONValue(typ byte, data []byte) error {
	switch bson.Type(typ) {
	case bson.TypeNull, bson.TypeUndefined:
		*d = Date{}
		return nil
	case bson.TypeEmbeddedDocument:
		var f Fields
		if err := bson.UnmarshalValue(bson.TypeEmbeddedDocument, data, &f); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		parsed, err := FromFields(f)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported BSON type %s", ErrInvalidFormat, bson.Type(typ))
	}
}

// MarshalBSONValue encodes the range as an embedded document with from and
// to components.
func (r Range) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(r.Fields())
	return byte(typ), data, err
}

// UnmarshalBSONValue decodes the RangeFields document form and validates
// endpoints and range with the default ruleset. A BSON null yields the
// unknown range.
func (r *Range) UnmarshalBSONValue(typ byte, data []byte) error {
	switch bson.Type(typ) {
	case bson.TypeNull, bson.TypeUndefined:
		*r = Range{}
		return nil
	case bson.TypeEmbeddedDocument:
		var f RangeFields
		if err := bson.UnmarshalValue(bson.TypeEmbeddedDocument, data, &f); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		parsed, err := RangeFromFields(f)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported BSON type %s", ErrInvalidFormat, bson.Type(typ))
	}
}
