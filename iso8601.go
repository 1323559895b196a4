package pginterval

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ISO 8601 durations with designators:
//
//	[-]P[nY][nM][nW][nD][T[nH][nM][nS]]
//
// Every component may carry its own sign. Only hours, minutes and seconds
// may be fractional, and only down to a microsecond.

func isISO8601(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "P")
}

func (ival Interval) appendISO8601(buf []byte) []byte {
	if ival.IsZero() {
		return append(buf, "PT0S"...)
	}

	buf = append(buf, 'P')
	appendPart := func(value int64, designator byte) {
		if value != 0 {
			buf = strconv.AppendInt(buf, value, 10)
			buf = append(buf, designator)
		}
	}
	appendPart(int64(ival.Months/monthsPerYear), 'Y')
	appendPart(int64(ival.Months%monthsPerYear), 'M')
	appendPart(int64(ival.Days), 'D')

	if ival.Microseconds == 0 {
		return buf
	}
	buf = append(buf, 'T')
	us := ival.Microseconds
	appendPart(us/MicrosecondsPerHour, 'H')
	appendPart(us%MicrosecondsPerHour/MicrosecondsPerMinute, 'M')
	if rem := us % MicrosecondsPerMinute; rem != 0 {
		buf = append(buf, decimal.New(rem, -6).String()...)
		buf = append(buf, 'S')
	}
	return buf
}

var isoDateDesignators = map[byte]unitKind{
	'Y': unitYear,
	'M': unitMonth,
	'W': unitWeek,
	'D': unitDay,
}

var isoTimeDesignators = map[byte]unitKind{
	'H': unitHour,
	'M': unitMinute,
	'S': unitSecond,
}

func parseISO8601(s string, pos int) (Interval, error) {
	fail := func(pos int, msg string) (Interval, error) {
		return Interval{}, &ParseError{Input: s, Pos: pos, Msg: msg}
	}

	end := len(strings.TrimRight(s, " \t\n\r"))
	neg := false
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}
	if pos >= end || s[pos] != 'P' {
		return fail(pos, "missing period designator")
	}
	pos++

	acc := newAccumulator()
	designators := isoDateDesignators
	inTime := false
	last := unitKind(-1)
	components := 0
	for pos < end {
		if s[pos] == 'T' {
			if inTime {
				return fail(pos, "repeated time designator")
			}
			inTime = true
			designators = isoTimeDesignators
			pos++
			if pos == end {
				return fail(pos, "missing time components")
			}
			continue
		}

		start := pos
		for pos < end && strings.IndexByte("+-.,0123456789", s[pos]) >= 0 {
			pos++
		}
		if pos == end {
			return fail(start, "missing designator")
		}
		num := strings.Replace(s[start:pos], ",", ".", 1)
		value, ok := parseNumber(num)
		if !ok {
			return fail(start, "invalid number "+strconv.Quote(s[start:pos]))
		}

		kind, ok := designators[s[pos]]
		if !ok {
			return fail(pos, "unexpected designator "+strconv.Quote(s[pos:pos+1]))
		}
		if kind <= last {
			return fail(pos, "designator "+strconv.Quote(s[pos:pos+1])+" out of order")
		}
		last = kind
		if msg := acc.add(kind, value, pos); msg != "" {
			return fail(start, msg)
		}
		components++
		pos++
	}
	if components == 0 {
		return fail(pos, "no duration components")
	}

	if neg {
		acc.negate()
	}
	ival, errPos, msg := acc.interval()
	if msg != "" {
		return fail(errPos, msg)
	}
	return ival, nil
}
