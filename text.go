package pginterval

import (
	"encoding"
	"strconv"
	"strings"

	"github.com/jackc/pgtype"
	"github.com/shopspring/decimal"
)

// Style is an interval text notation.
type Style int

const (
	// StylePostgres is PostgreSQL's default "postgres" IntervalStyle, e.g.
	// "1 year 2 mons -3 days +04:05:06.000007".
	StylePostgres Style = iota
	// StyleISO8601 is the ISO 8601 "format with designators", e.g.
	// "P1Y2M-3DT4H5M6.000007S".
	StyleISO8601
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StylePostgres:
		return "postgres"
	case StyleISO8601:
		return "iso_8601"
	default:
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
}

var (
	_ encoding.TextMarshaler   = Interval{}
	_ encoding.TextUnmarshaler = (*Interval)(nil)

	_ pgtype.TextDecoder = (*Interval)(nil)
	_ pgtype.TextEncoder = Interval{}
)

// Format returns ival in the given notation. Unknown styles fall back to
// StylePostgres.
func (ival Interval) Format(style Style) string {
	return string(ival.AppendFormat(nil, style))
}

// AppendFormat is like Format but appends the text to buf.
func (ival Interval) AppendFormat(buf []byte, style Style) []byte {
	if style == StyleISO8601 {
		return ival.appendISO8601(buf)
	}
	return ival.appendPostgres(buf)
}

// Parse parses an interval written in the postgres (including the verbose
// "@ ... ago" form) or ISO 8601 notation. Any string produced by Format
// parses back to the same value.
func Parse(s string) (Interval, error) {
	trimmed := strings.TrimLeft(s, " \t\n\r")
	offset := len(s) - len(trimmed)
	if isISO8601(trimmed) {
		return parseISO8601(s, offset)
	}
	return parsePostgres(s)
}

// MarshalText implements encoding.TextMarshaler using StylePostgres.
func (ival Interval) MarshalText() ([]byte, error) {
	return ival.appendPostgres(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (ival *Interval) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*ival = v
	return nil
}

// DecodeText implements pgtype.TextDecoder. SQL NULL (nil src) is rejected.
func (ival *Interval) DecodeText(_ *pgtype.ConnInfo, src []byte) error {
	if src == nil {
		return &DecodeError{Len: 0}
	}
	return ival.UnmarshalText(src)
}

// EncodeText implements pgtype.TextEncoder.
func (ival Interval) EncodeText(_ *pgtype.ConnInfo, buf []byte) ([]byte, error) {
	return ival.appendPostgres(buf), nil
}

func (ival Interval) appendPostgres(buf []byte) []byte {
	start := len(buf)
	isZero := true
	isBefore := false

	appendPart := func(value int64, unit string) {
		if value == 0 {
			return
		}
		if !isZero {
			buf = append(buf, ' ')
		}
		if isBefore && value > 0 {
			buf = append(buf, '+')
		}
		buf = strconv.AppendInt(buf, value, 10)
		buf = append(buf, ' ')
		buf = append(buf, unit...)
		if value != 1 {
			buf = append(buf, 's')
		}
		isBefore = value < 0
		isZero = false
	}

	appendPart(int64(ival.Months/monthsPerYear), "year")
	appendPart(int64(ival.Months%monthsPerYear), "mon")
	appendPart(int64(ival.Days), "day")

	if ival.Microseconds == 0 && !isZero {
		return buf
	}
	if len(buf) > start {
		buf = append(buf, ' ')
	}

	abs := uint64(ival.Microseconds)
	switch {
	case ival.Microseconds < 0:
		abs = uint64(-ival.Microseconds)
		buf = append(buf, '-')
	case isBefore:
		buf = append(buf, '+')
	}
	return appendClock(buf, abs)
}

// appendClock appends HH:MM:SS[.ffffff] with trailing fraction zeros trimmed.
func appendClock(buf []byte, us uint64) []byte {
	hours := us / MicrosecondsPerHour
	minutes := us % MicrosecondsPerHour / MicrosecondsPerMinute
	seconds := us % MicrosecondsPerMinute / MicrosecondsPerSecond
	fraction := us % MicrosecondsPerSecond

	buf = appendPadded(buf, hours)
	buf = append(buf, ':')
	buf = appendPadded(buf, minutes)
	buf = append(buf, ':')
	buf = appendPadded(buf, seconds)
	if fraction == 0 {
		return buf
	}

	digits := strconv.FormatUint(fraction, 10)
	buf = append(buf, '.')
	for i := len(digits); i < 6; i++ {
		buf = append(buf, '0')
	}
	return append(buf, strings.TrimRight(digits, "0")...)
}

func appendPadded(buf []byte, v uint64) []byte {
	if v < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendUint(buf, v, 10)
}

type unitKind int

const (
	unitYear unitKind = iota
	unitMonth
	unitWeek
	unitDay
	unitHour
	unitMinute
	unitSecond
	unitMillisecond
	unitMicrosecond
)

var unitNames = map[string]unitKind{
	"y": unitYear, "yr": unitYear, "yrs": unitYear, "year": unitYear, "years": unitYear,
	"mon": unitMonth, "mons": unitMonth, "month": unitMonth, "months": unitMonth,
	"w": unitWeek, "week": unitWeek, "weeks": unitWeek,
	"d": unitDay, "day": unitDay, "days": unitDay,
	"h": unitHour, "hr": unitHour, "hrs": unitHour, "hour": unitHour, "hours": unitHour,
	"m": unitMinute, "min": unitMinute, "mins": unitMinute, "minute": unitMinute, "minutes": unitMinute,
	"s": unitSecond, "sec": unitSecond, "secs": unitSecond, "second": unitSecond, "seconds": unitSecond,
	"ms": unitMillisecond, "msec": unitMillisecond, "msecs": unitMillisecond,
	"millisecond": unitMillisecond, "milliseconds": unitMillisecond,
	"us": unitMicrosecond, "usec": unitMicrosecond, "usecs": unitMicrosecond,
	"microsecond": unitMicrosecond, "microseconds": unitMicrosecond,
}

var (
	decMonthsPerYear = decimal.NewFromInt(monthsPerYear)
	decDaysPerWeek   = decimal.NewFromInt(daysPerWeek)

	decUnitMicroseconds = map[unitKind]decimal.Decimal{
		unitHour:        decimal.NewFromInt(MicrosecondsPerHour),
		unitMinute:      decimal.NewFromInt(MicrosecondsPerMinute),
		unitSecond:      decimal.NewFromInt(MicrosecondsPerSecond),
		unitMillisecond: decimal.NewFromInt(1000),
		unitMicrosecond: decimal.NewFromInt(1),
	}

	decMinInt32 = decimal.NewFromInt(-1 << 31)
	decMaxInt32 = decimal.NewFromInt(1<<31 - 1)
	decMinInt64 = decimal.NewFromInt(-1 << 63)
	decMaxInt64 = decimal.NewFromInt(1<<63 - 1)
)

// accField is one exactly summed interval field. outPos is the offset of
// the token since which the sum has been out of range.
type accField struct {
	sum     decimal.Decimal
	min     decimal.Decimal
	max     decimal.Decimal
	lastPos int
	out     bool
	outPos  int
}

func (f *accField) add(v decimal.Decimal, pos int) {
	f.sum = f.sum.Add(v)
	f.lastPos = pos
	f.check(pos)
}

func (f *accField) negate() {
	f.sum = f.sum.Neg()
	f.check(f.lastPos)
}

func (f *accField) check(pos int) {
	switch {
	case !f.sum.LessThan(f.min) && !f.sum.GreaterThan(f.max):
		f.out = false
	case !f.out:
		f.out, f.outPos = true, pos
	}
}

// accumulator sums interval components exactly; ranges are checked once all
// components are known.
type accumulator struct {
	months accField
	days   accField
	micros accField
}

func newAccumulator() *accumulator {
	return &accumulator{
		months: accField{min: decMinInt32, max: decMaxInt32},
		days:   accField{min: decMinInt32, max: decMaxInt32},
		micros: accField{min: decMinInt64, max: decMaxInt64},
	}
}

// add adds value of the given unit written at pos. It returns a non-empty
// message if the value cannot be represented.
func (a *accumulator) add(unit unitKind, value decimal.Decimal, pos int) string {
	switch unit {
	case unitYear, unitMonth, unitWeek, unitDay:
		if !value.IsInteger() {
			return "fractional calendar units are not supported"
		}
	}

	switch unit {
	case unitYear:
		a.months.add(value.Mul(decMonthsPerYear), pos)
	case unitMonth:
		a.months.add(value, pos)
	case unitWeek:
		a.days.add(value.Mul(decDaysPerWeek), pos)
	case unitDay:
		a.days.add(value, pos)
	default:
		us := value.Mul(decUnitMicroseconds[unit])
		if !us.IsInteger() {
			return "sub-microsecond precision is not supported"
		}
		a.micros.add(us, pos)
	}
	return ""
}

func (a *accumulator) negate() {
	a.months.negate()
	a.days.negate()
	a.micros.negate()
}

// interval returns the summed fields. On overflow it returns the offset of
// the offending token and a message.
func (a *accumulator) interval() (Interval, int, string) {
	switch {
	case a.months.out:
		return Interval{}, a.months.outPos, "months out of range"
	case a.days.out:
		return Interval{}, a.days.outPos, "days out of range"
	case a.micros.out:
		return Interval{}, a.micros.outPos, "time out of range"
	}
	return Interval{
		Months:       int32(a.months.sum.IntPart()),
		Days:         int32(a.days.sum.IntPart()),
		Microseconds: a.micros.sum.IntPart(),
	}, 0, ""
}

// parseNumber parses [+-]digits[.digits] into a decimal.
func parseNumber(s string) (decimal.Decimal, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return decimal.Decimal{}, false
	}
	intPart, fracPart, hasFrac := strings.Cut(digits, ".")
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

type token struct {
	text string
	pos  int
}

func tokenize(s string) []token {
	var tokens []token
	start := -1
	for i := 0; i <= len(s); i++ {
		space := i == len(s) || s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r'
		switch {
		case space && start >= 0:
			tokens = append(tokens, token{text: s[start:i], pos: start})
			start = -1
		case !space && start < 0:
			start = i
		}
	}
	return tokens
}

// splitNumberUnit splits "5days" into "5" and "days".
func splitNumberUnit(s string) (string, string) {
	i := 0
	for i < len(s) && (s[i] == '+' || s[i] == '-' || s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	return s[:i], s[i:]
}

func parsePostgres(s string) (Interval, error) {
	fail := func(pos int, msg string) (Interval, error) {
		return Interval{}, &ParseError{Input: s, Pos: pos, Msg: msg}
	}

	tokens := tokenize(s)
	if len(tokens) > 0 && tokens[0].text == "@" {
		tokens = tokens[1:]
	}
	ago := false
	if n := len(tokens); n > 0 && strings.EqualFold(tokens[n-1].text, "ago") {
		ago = true
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return fail(len(s), "empty interval")
	}

	acc := newAccumulator()
	seen := make(map[unitKind]bool)
	clock := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if strings.Contains(tok.text, ":") {
			if clock {
				return fail(tok.pos, "repeated time of day")
			}
			clock = true
			us, msg := parseClock(tok.text)
			if msg != "" {
				return fail(tok.pos, msg)
			}
			acc.micros.add(us, tok.pos)
			continue
		}

		num, unit := splitNumberUnit(tok.text)
		value, ok := parseNumber(num)
		if !ok {
			return fail(tok.pos, "invalid number "+strconv.Quote(num))
		}
		unitPos := tok.pos + len(num)
		if unit == "" {
			if i+1 == len(tokens) {
				return fail(len(s), "missing unit after "+strconv.Quote(num))
			}
			i++
			unit, unitPos = tokens[i].text, tokens[i].pos
		}
		kind, ok := unitNames[strings.ToLower(unit)]
		if !ok {
			return fail(unitPos, "unknown unit "+strconv.Quote(unit))
		}
		if seen[kind] {
			return fail(unitPos, "repeated unit "+strconv.Quote(unit))
		}
		seen[kind] = true
		if msg := acc.add(kind, value, unitPos); msg != "" {
			return fail(tok.pos, msg)
		}
	}

	if ago {
		acc.negate()
	}
	ival, pos, msg := acc.interval()
	if msg != "" {
		return fail(pos, msg)
	}
	return ival, nil
}

// parseClock parses [+-]H:MM[:SS[.ffffff]] into signed microseconds.
func parseClock(s string) (decimal.Decimal, string) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return decimal.Decimal{}, "invalid time of day"
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) || len(parts[1]) > 2 {
		return decimal.Decimal{}, "invalid time of day"
	}
	hours, err := decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Decimal{}, "invalid hours"
	}
	minutes, _ := strconv.Atoi(parts[1])
	if minutes >= 60 {
		return decimal.Decimal{}, "minutes out of range"
	}

	us := hours.Mul(decUnitMicroseconds[unitHour]).
		Add(decimal.NewFromInt(int64(minutes) * MicrosecondsPerMinute))

	if len(parts) == 3 {
		secPart, fracPart, hasFrac := strings.Cut(parts[2], ".")
		if !isDigits(secPart) || len(secPart) > 2 || (hasFrac && !isDigits(fracPart)) {
			return decimal.Decimal{}, "invalid seconds"
		}
		if len(fracPart) > 6 {
			return decimal.Decimal{}, "sub-microsecond precision is not supported"
		}
		seconds, _ := strconv.Atoi(secPart)
		if seconds >= 60 {
			return decimal.Decimal{}, "seconds out of range"
		}
		fraction := 0
		if hasFrac {
			fraction, _ = strconv.Atoi(fracPart + strings.Repeat("0", 6-len(fracPart)))
		}
		us = us.Add(decimal.NewFromInt(int64(seconds)*MicrosecondsPerSecond + int64(fraction)))
	}

	if neg {
		us = us.Neg()
	}
	return us, ""
}
