//go:build !pginterval_msgpack_v5
// +build !pginterval_msgpack_v5

package pginterval

import (
	"gopkg.in/vmihailenco/msgpack.v2"
)

func init() {
	msgpack.RegisterExt(ExtID, &Interval{})
}
