package pginterval

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgio"
	"github.com/jackc/pgtype"
)

// Intervals is a one-dimensional PostgreSQL interval[] array. A nil slice is
// SQL NULL. NULL elements are not supported.
//
// The binary form is the array header followed by every element as a
// 4-byte length and the 16-byte interval; a length of -1 marks NULL.
type Intervals []Interval

var (
	_ pgtype.BinaryDecoder = (*Intervals)(nil)
	_ pgtype.BinaryEncoder = Intervals(nil)
	_ pgtype.TextDecoder   = (*Intervals)(nil)
	_ pgtype.TextEncoder   = Intervals(nil)
	_ sql.Scanner          = (*Intervals)(nil)
	_ driver.Valuer        = Intervals(nil)
)

// DecodeBinary implements pgtype.BinaryDecoder.
func (dst *Intervals) DecodeBinary(ci *pgtype.ConnInfo, src []byte) error {
	if src == nil {
		*dst = nil
		return nil
	}

	var hdr pgtype.ArrayHeader
	rp, err := hdr.DecodeBinary(ci, src)
	if err != nil {
		return fmt.Errorf("pginterval: can't decode interval array: %w", err)
	}
	if hdr.ElementOID != pgtype.IntervalOID {
		return fmt.Errorf("pginterval: can't decode array of oid %d as interval array", hdr.ElementOID)
	}
	if len(hdr.Dimensions) > 1 {
		return fmt.Errorf("pginterval: can't decode %d-dimensional interval array", len(hdr.Dimensions))
	}
	if len(hdr.Dimensions) == 0 {
		*dst = Intervals{}
		return nil
	}

	res := make(Intervals, hdr.Dimensions[0].Length)
	var errs *multierror.Error
	for i := range res {
		if len(src)-rp < 4 {
			return fmt.Errorf("pginterval: can't decode interval array: element %d: unexpected end of data", i)
		}
		elemLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4

		if elemLen == -1 {
			errs = multierror.Append(errs, fmt.Errorf("element %d: NULL is not supported", i))
			continue
		}
		if elemLen < 0 || len(src)-rp < elemLen {
			return fmt.Errorf("pginterval: can't decode interval array: element %d: unexpected end of data", i)
		}

		ival, err := Decode(src[rp : rp+elemLen])
		rp += elemLen
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		res[i] = ival
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	*dst = res
	return nil
}

// DecodeText implements pgtype.TextDecoder. Elements may use any notation
// accepted by Parse.
func (dst *Intervals) DecodeText(_ *pgtype.ConnInfo, src []byte) error {
	if src == nil {
		*dst = nil
		return nil
	}

	uta, err := pgtype.ParseUntypedTextArray(string(src))
	if err != nil {
		return fmt.Errorf("pginterval: can't parse interval array: %w", err)
	}
	if len(uta.Dimensions) > 1 {
		return fmt.Errorf("pginterval: can't decode %d-dimensional interval array", len(uta.Dimensions))
	}

	res := make(Intervals, len(uta.Elements))
	var errs *multierror.Error
	for i, s := range uta.Elements {
		if !uta.Quoted[i] && strings.EqualFold(s, "NULL") {
			errs = multierror.Append(errs, fmt.Errorf("element %d: NULL is not supported", i))
			continue
		}
		ival, err := Parse(s)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		res[i] = ival
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	*dst = res
	return nil
}

// EncodeBinary implements pgtype.BinaryEncoder.
func (src Intervals) EncodeBinary(ci *pgtype.ConnInfo, buf []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}

	hdr := pgtype.ArrayHeader{ElementOID: pgtype.IntervalOID}
	if len(src) > 0 {
		hdr.Dimensions = []pgtype.ArrayDimension{{Length: int32(len(src)), LowerBound: 1}}
	}
	buf = hdr.EncodeBinary(ci, buf)

	var err error
	for _, ival := range src {
		buf = pgio.AppendInt32(buf, BinarySize)
		if buf, err = ival.AppendBinary(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// EncodeText implements pgtype.TextEncoder.
func (src Intervals) EncodeText(_ *pgtype.ConnInfo, buf []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}

	buf = append(buf, '{')
	for i, ival := range src {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = ival.appendPostgres(buf)
		buf = append(buf, '"')
	}
	return append(buf, '}'), nil
}

// Scan implements sql.Scanner.
func (dst *Intervals) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*dst = nil
		return nil
	case string:
		return dst.DecodeText(nil, []byte(v))
	case []byte:
		return dst.DecodeText(nil, v)
	default:
		return &ConversionError{Op: "scan", Msg: fmt.Sprintf("cannot scan %T into an interval array", src)}
	}
}

// Value implements driver.Valuer.
func (src Intervals) Value() (driver.Value, error) {
	buf, err := src.EncodeText(nil, nil)
	if err != nil || buf == nil {
		return nil, err
	}
	return string(buf), nil
}
