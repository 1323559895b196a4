package pginterval_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/go-pginterval"
)

const hour = pginterval.MicrosecondsPerHour

func TestNew(t *testing.T) {
	ival := pginterval.New(1, 2, hour)
	assert.Equal(t, pginterval.Interval{Months: 1, Days: 2, Microseconds: hour}, ival)
	assert.False(t, ival.IsZero())
	assert.True(t, pginterval.Interval{}.IsZero())
}

func TestPgtypeRoundTrip(t *testing.T) {
	ival := pginterval.New(-3, 40, -5)

	pgi := ival.Pgtype()
	assert.Equal(t, pgtype.Interval{Months: -3, Days: 40, Microseconds: -5, Status: pgtype.Present}, pgi)

	res, err := pginterval.FromPgtype(pgi)
	require.NoError(t, err)
	assert.Equal(t, ival, res)
}

func TestFromPgtypeNotPresent(t *testing.T) {
	for _, status := range []pgtype.Status{pgtype.Undefined, pgtype.Null} {
		_, err := pginterval.FromPgtype(pgtype.Interval{Days: 1, Status: status})

		var convErr *pginterval.ConversionError
		require.True(t, errors.As(err, &convErr), "unexpected error %v", err)
		assert.Equal(t, "from pgtype", convErr.Op)
	}
}

func TestIntervalString(t *testing.T) {
	ival := pginterval.New(1, 2, hour)
	assert.Equal(t, "1 mon 2 days 01:00:00", ival.String())
}
