package fuzzydate

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"
)

var (
	_ driver.Valuer = Date{}
	_ sql.Scanner   = (*Date)(nil)
)

// Value stores the date as its canonical text form. The unknown date stores
// as NULL; gap dates fail with ErrNotCanonical since a single column cannot
// carry them losslessly.
func (d Date) Value() (driver.Value, error) {
	if d.IsUnknown() {
		return nil, nil
	}
	if err := d.canonical(); err != nil {
		return nil, err
	}
	return d.String(), nil
}

// Scan reads a date from a database column. NULL yields the unknown date;
// strings and byte slices go through Parse, and timestamps keep only their
// calendar date. Validation uses the default ruleset.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		parsed, err := FromTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into a date", ErrInvalidFormat, src)
	}
}
