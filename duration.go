package pginterval

import (
	"fmt"
	"math"
	"time"
)

// A calendar month has no fixed length, so conversions to durations refuse
// intervals with months. A day is always 24 hours. Conversions from durations
// never produce months or days: the whole duration goes to Microseconds.
//
// FromDuration(ival.Duration()) therefore returns ival for every interval
// with zero Months and Days.

// FromDuration converts d to an Interval. It fails if d is not a whole
// number of microseconds.
func FromDuration(d time.Duration) (Interval, error) {
	if d%time.Microsecond != 0 {
		return Interval{}, &ConversionError{
			Op:  "from time.Duration",
			Msg: fmt.Sprintf("%s has sub-microsecond precision", d),
		}
	}
	return Interval{Microseconds: d.Microseconds()}, nil
}

// Duration converts ival to a time.Duration. It fails if ival has months or
// does not fit into a time.Duration.
//
// Days count as 24 hours and do not come back: FromDuration(d) of the result
// equals ival only when ival.Days is zero. Otherwise it returns the interval
// with the days folded into Microseconds.
func (ival Interval) Duration() (time.Duration, error) {
	const op = "to time.Duration"

	us, err := ival.totalMicroseconds(op)
	if err != nil {
		return 0, err
	}
	if us > math.MaxInt64/int64(time.Microsecond) || us < math.MinInt64/int64(time.Microsecond) {
		return 0, &ConversionError{Op: op, Msg: fmt.Sprintf("%s overflows time.Duration", ival)}
	}
	return time.Duration(us) * time.Microsecond, nil
}

// TotalMicroseconds returns the length of ival in microseconds, counting a
// day as 24 hours. It fails if ival has months or the sum overflows int64.
func (ival Interval) TotalMicroseconds() (int64, error) {
	return ival.totalMicroseconds("to microseconds")
}

func (ival Interval) totalMicroseconds(op string) (int64, error) {
	if ival.Months != 0 {
		return 0, &ConversionError{Op: op, Msg: "months have no fixed duration"}
	}

	overflow := &ConversionError{Op: op, Msg: fmt.Sprintf("%s overflows int64 microseconds", ival)}
	if d := int64(ival.Days); d > math.MaxInt64/MicrosecondsPerDay || d < math.MinInt64/MicrosecondsPerDay {
		return 0, overflow
	}

	days := int64(ival.Days) * MicrosecondsPerDay
	us := days + ival.Microseconds
	if (ival.Microseconds > 0 && us < days) || (ival.Microseconds < 0 && us > days) {
		return 0, overflow
	}
	return us, nil
}
