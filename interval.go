// Package pginterval provides support for PostgreSQL's interval data type.
//
// Interval mirrors the three independent fields PostgreSQL stores for an
// interval (months, days and microseconds) and converts them to and from
// the binary protocol form, PostgreSQL and ISO 8601 text, JSON, MessagePack
// and fixed-length durations.
//
// The binary protocol is handled by github.com/jackc/pgtype, so an Interval
// can be used directly as a query argument or scan destination with pgx v4
// and database/sql.
//
// See also:
//
//   - PostgreSQL date/time types:
//     https://www.postgresql.org/docs/current/datatype-datetime.html
//
//   - Interval output styles:
//     https://www.postgresql.org/docs/current/datatype-datetime.html#DATATYPE-INTERVAL-OUTPUT
//
//   - ISO 8601 durations:
//     https://en.wikipedia.org/wiki/ISO_8601#Durations
package pginterval

import (
	"fmt"

	"github.com/jackc/pgtype"
)

const (
	MicrosecondsPerSecond = 1000000
	MicrosecondsPerMinute = 60 * MicrosecondsPerSecond
	MicrosecondsPerHour   = 60 * MicrosecondsPerMinute
	MicrosecondsPerDay    = 24 * MicrosecondsPerHour

	monthsPerYear = 12
	daysPerWeek   = 7
)

// Interval is a PostgreSQL interval value.
//
// The fields are stored and transmitted independently: days never overflow
// into months and microseconds never overflow into days. The zero value is
// the zero interval.
type Interval struct {
	Months       int32
	Days         int32
	Microseconds int64
}

// New returns an Interval with the given fields.
func New(months, days int32, microseconds int64) Interval {
	return Interval{Months: months, Days: days, Microseconds: microseconds}
}

// FromPgtype converts a pgtype.Interval to an Interval. It fails if src does
// not hold a present value.
func FromPgtype(src pgtype.Interval) (Interval, error) {
	if src.Status != pgtype.Present {
		return Interval{}, &ConversionError{
			Op:  "from pgtype",
			Msg: fmt.Sprintf("interval status is %s", statusName(src.Status)),
		}
	}
	return Interval{
		Months:       src.Months,
		Days:         src.Days,
		Microseconds: src.Microseconds,
	}, nil
}

// Pgtype returns the pgtype.Interval holding the same fields as ival.
func (ival Interval) Pgtype() pgtype.Interval {
	return pgtype.Interval{
		Months:       ival.Months,
		Days:         ival.Days,
		Microseconds: ival.Microseconds,
		Status:       pgtype.Present,
	}
}

// IsZero reports whether every field of ival is zero.
func (ival Interval) IsZero() bool {
	return ival == Interval{}
}

// String returns ival in PostgreSQL's "postgres" interval style.
func (ival Interval) String() string {
	return ival.Format(StylePostgres)
}

func statusName(s pgtype.Status) string {
	switch s {
	case pgtype.Undefined:
		return "undefined"
	case pgtype.Null:
		return "null"
	case pgtype.Present:
		return "present"
	default:
		return fmt.Sprintf("unknown (%d)", s)
	}
}
