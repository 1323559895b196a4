//go:build !pginterval_msgpack_v5
// +build !pginterval_msgpack_v5

package pginterval_test

import (
	"gopkg.in/vmihailenco/msgpack.v2"

	"github.com/ice-blockchain/go-pginterval"
)

func toInterval(i interface{}) (v pginterval.Interval, ok bool) {
	v, ok = i.(pginterval.Interval)
	return
}

func marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
