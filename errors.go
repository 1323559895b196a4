package pginterval

import (
	"fmt"
	"strconv"
)

// DecodeError is returned when a binary interval value has a wrong size.
type DecodeError struct {
	// Len is the size of the rejected buffer.
	Len int
}

// Error converts a DecodeError to a string.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("pginterval: invalid binary size: got %d, wanted %d", e.Len, BinarySize)
}

// ParseError is returned when a string is not a valid interval.
type ParseError struct {
	// Input is the whole string being parsed.
	Input string
	// Pos is the byte offset of the offending token in Input.
	Pos int
	// Msg describes the problem.
	Msg string
}

// Error converts a ParseError to a string.
func (e *ParseError) Error() string {
	return "pginterval: cannot parse " + strconv.Quote(e.Input) +
		" at offset " + strconv.Itoa(e.Pos) + ": " + e.Msg
}

// ConversionError is returned when a value cannot be represented in the
// target type: the range overflows, precision would be lost, or the interval
// has months that a fixed-length duration cannot express.
type ConversionError struct {
	// Op names the conversion, e.g. "to time.Duration".
	Op string
	// Msg describes the problem.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

// Error converts a ConversionError to a string.
func (e *ConversionError) Error() string {
	msg := "pginterval: " + e.Op + ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
