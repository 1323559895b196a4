package pginterval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ice-blockchain/go-pginterval"
)

func genInterval() *rapid.Generator[pginterval.Interval] {
	return rapid.Custom(func(t *rapid.T) pginterval.Interval {
		return pginterval.Interval{
			Months:       rapid.Int32().Draw(t, "months"),
			Days:         rapid.Int32().Draw(t, "days"),
			Microseconds: rapid.Int64().Draw(t, "microseconds"),
		}
	})
}

func TestBinaryRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ival := genInterval().Draw(t, "interval")

		buf, err := ival.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, buf, pginterval.BinarySize)

		res, err := pginterval.Decode(buf)
		require.NoError(t, err)
		require.Equal(t, ival, res)
	})
}

func TestTextRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ival := genInterval().Draw(t, "interval")
		style := rapid.SampledFrom([]pginterval.Style{
			pginterval.StylePostgres,
			pginterval.StyleISO8601,
		}).Draw(t, "style")

		text := ival.Format(style)
		res, err := pginterval.Parse(text)
		require.NoError(t, err, "text %q", text)
		require.Equal(t, ival, res, "text %q", text)
	})
}

func TestDurationRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ival := pginterval.Interval{
			Microseconds: rapid.Int64Range(math.MinInt64/1000, math.MaxInt64/1000).Draw(t, "microseconds"),
		}

		d, err := ival.Duration()
		require.NoError(t, err)

		res, err := pginterval.FromDuration(d)
		require.NoError(t, err)
		require.Equal(t, ival, res)
	})
}

func TestDurationDaysProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		days := rapid.Int32Range(-50000, 50000).Draw(t, "days")
		us := rapid.Int64Range(-1<<50, 1<<50).Draw(t, "microseconds")
		ival := pginterval.New(0, days, us)

		d, err := ival.Duration()
		require.NoError(t, err)
		require.Equal(t, int64(days)*pginterval.MicrosecondsPerDay+us, d.Microseconds())
	})
}
