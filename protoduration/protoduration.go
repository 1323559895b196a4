// Package protoduration converts between PostgreSQL intervals and protobuf
// durations (google.protobuf.Duration).
//
// The package is separate from pginterval so that only its users depend on
// google.golang.org/protobuf. Conversions follow the policy of
// pginterval.FromDuration and pginterval.Interval.Duration: intervals with
// months are rejected, a day is 24 hours, and durations always convert to
// intervals with zero months and days.
package protoduration

import (
	"fmt"

	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/ice-blockchain/go-pginterval"
)

const nanosPerMicrosecond = 1000

// FromProto converts a protobuf duration to an Interval. It fails if d is
// nil, invalid, or has sub-microsecond precision.
func FromProto(d *durationpb.Duration) (pginterval.Interval, error) {
	const op = "from durationpb.Duration"

	if err := d.CheckValid(); err != nil {
		return pginterval.Interval{}, &pginterval.ConversionError{Op: op, Msg: "invalid duration", Err: err}
	}
	if d.GetNanos()%nanosPerMicrosecond != 0 {
		return pginterval.Interval{}, &pginterval.ConversionError{
			Op:  op,
			Msg: fmt.Sprintf("%ds %dns has sub-microsecond precision", d.GetSeconds(), d.GetNanos()),
		}
	}

	// Valid durations span at most 10000 years, which always fits.
	us := d.GetSeconds()*pginterval.MicrosecondsPerSecond + int64(d.GetNanos()/nanosPerMicrosecond)
	return pginterval.Interval{Microseconds: us}, nil
}

// ToProto converts an Interval to a protobuf duration. It fails if ival has
// months or its length is out of the protobuf duration range.
func ToProto(ival pginterval.Interval) (*durationpb.Duration, error) {
	const op = "to durationpb.Duration"

	us, err := ival.TotalMicroseconds()
	if err != nil {
		return nil, &pginterval.ConversionError{Op: op, Msg: "interval has no fixed length", Err: err}
	}

	d := &durationpb.Duration{
		Seconds: us / pginterval.MicrosecondsPerSecond,
		Nanos:   int32(us%pginterval.MicrosecondsPerSecond) * nanosPerMicrosecond,
	}
	if err := d.CheckValid(); err != nil {
		return nil, &pginterval.ConversionError{Op: op, Msg: "out of range", Err: err}
	}
	return d, nil
}
