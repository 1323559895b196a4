//go:build pginterval_msgpack_v5
// +build pginterval_msgpack_v5

package pginterval

import (
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

func encodeExt(_ *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	ival := v.Interface().(Interval)
	return ival.MarshalBinary()
}

func decodeExt(d *msgpack.Decoder, v reflect.Value, extLen int) error {
	b := make([]byte, extLen)
	if err := d.ReadFull(b); err != nil {
		return err
	}

	ival, err := Decode(b)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(ival))
	return nil
}

func init() {
	msgpack.RegisterExtEncoder(ExtID, Interval{}, encodeExt)
	msgpack.RegisterExtDecoder(ExtID, Interval{}, decodeExt)
}
