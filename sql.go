package pginterval

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
)

var (
	_ sql.Scanner   = (*Interval)(nil)
	_ driver.Valuer = Interval{}
)

// Scan implements sql.Scanner. Drivers hand intervals over as text; pgtype
// values and time.Duration are accepted as well.
func (ival *Interval) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return &DecodeError{Len: 0}
	case string:
		return ival.UnmarshalText([]byte(v))
	case []byte:
		return ival.UnmarshalText(v)
	case Interval:
		*ival = v
		return nil
	case pgtype.Interval:
		res, err := FromPgtype(v)
		if err != nil {
			return err
		}
		*ival = res
		return nil
	case time.Duration:
		res, err := FromDuration(v)
		if err != nil {
			return err
		}
		*ival = res
		return nil
	default:
		return &ConversionError{Op: "scan", Msg: fmt.Sprintf("cannot scan %T into an interval", src)}
	}
}

// Value implements driver.Valuer using StylePostgres.
func (ival Interval) Value() (driver.Value, error) {
	return ival.Format(StylePostgres), nil
}
