package pginterval

import (
	"encoding"

	"github.com/jackc/pgtype"
)

// Interval binary protocol layout, all fields big-endian:
//
//	+-------------------+-------------+---------------+
//	| microseconds (8b) | days (4b)   | months (4b)   |
//	+-------------------+-------------+---------------+
//
// The same 16 bytes are the payload of the MessagePack extension.

// BinarySize is the size of an interval in the binary protocol.
const BinarySize = 16

// ExtID is the MessagePack extension type identifier of an Interval.
const ExtID = 10

var (
	_ encoding.BinaryMarshaler   = Interval{}
	_ encoding.BinaryUnmarshaler = (*Interval)(nil)

	_ pgtype.BinaryDecoder = (*Interval)(nil)
	_ pgtype.BinaryEncoder = Interval{}
)

// Decode decodes an interval from its binary protocol form. src must be
// exactly BinarySize bytes long.
func Decode(src []byte) (Interval, error) {
	if len(src) != BinarySize {
		return Interval{}, &DecodeError{Len: len(src)}
	}

	var pgi pgtype.Interval
	if err := pgi.DecodeBinary(nil, src); err != nil {
		return Interval{}, &DecodeError{Len: len(src)}
	}
	return FromPgtype(pgi)
}

// AppendBinary appends the binary protocol form of ival to buf.
func (ival Interval) AppendBinary(buf []byte) ([]byte, error) {
	return ival.Pgtype().EncodeBinary(nil, buf)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ival Interval) MarshalBinary() ([]byte, error) {
	return ival.AppendBinary(make([]byte, 0, BinarySize))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ival *Interval) UnmarshalBinary(data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	*ival = v
	return nil
}

// DecodeBinary implements pgtype.BinaryDecoder. SQL NULL (nil src) is
// rejected; scan into a pointer to handle nullable columns.
func (ival *Interval) DecodeBinary(_ *pgtype.ConnInfo, src []byte) error {
	return ival.UnmarshalBinary(src)
}

// EncodeBinary implements pgtype.BinaryEncoder.
func (ival Interval) EncodeBinary(_ *pgtype.ConnInfo, buf []byte) ([]byte, error) {
	return ival.AppendBinary(buf)
}

// MarshalMsgpack implements a custom msgpack marshaler.
func (ival Interval) MarshalMsgpack() ([]byte, error) {
	return ival.MarshalBinary()
}

// UnmarshalMsgpack implements a custom msgpack unmarshaler.
func (ival *Interval) UnmarshalMsgpack(data []byte) error {
	return ival.UnmarshalBinary(data)
}
