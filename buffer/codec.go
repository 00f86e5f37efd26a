package buffer

import (
	"math"

	"github.com/arloliu/flexbuf/endian"
)

// Scalar is the set of element types a buffer can hold: every fixed-width
// primitive from one to eight bytes. Floating point values are always
// transferred by raw bit pattern (math.Float*bits), so NaN payloads and
// signed zeros survive a round trip through byte storage.
type Scalar interface {
	~uint8 | ~int16 | ~uint16 | ~int32 | ~int64 | ~float32 | ~float64
}

// codec describes one element width: its size in bytes and the
// byte-order-aware decode/encode pair. decode(encode(x)) == x for every
// representable x, since both directions operate on raw bits.
type codec[T Scalar] struct {
	size   int
	decode func(endian.EndianEngine, []byte) T
	encode func(endian.EndianEngine, []byte, T)
}

var int16Codec = codec[int16]{
	size: 2,
	decode: func(e endian.EndianEngine, b []byte) int16 {
		return int16(e.Uint16(b))
	},
	encode: func(e endian.EndianEngine, b []byte, v int16) {
		e.PutUint16(b, uint16(v))
	},
}

var uint16Codec = codec[uint16]{
	size: 2,
	decode: func(e endian.EndianEngine, b []byte) uint16 {
		return e.Uint16(b)
	},
	encode: func(e endian.EndianEngine, b []byte, v uint16) {
		e.PutUint16(b, v)
	},
}

var int32Codec = codec[int32]{
	size: 4,
	decode: func(e endian.EndianEngine, b []byte) int32 {
		return int32(e.Uint32(b))
	},
	encode: func(e endian.EndianEngine, b []byte, v int32) {
		e.PutUint32(b, uint32(v))
	},
}

var int64Codec = codec[int64]{
	size: 8,
	decode: func(e endian.EndianEngine, b []byte) int64 {
		return int64(e.Uint64(b))
	},
	encode: func(e endian.EndianEngine, b []byte, v int64) {
		e.PutUint64(b, uint64(v))
	},
}

var float32Codec = codec[float32]{
	size: 4,
	decode: func(e endian.EndianEngine, b []byte) float32 {
		return math.Float32frombits(e.Uint32(b))
	},
	encode: func(e endian.EndianEngine, b []byte, v float32) {
		e.PutUint32(b, math.Float32bits(v))
	},
}

var float64Codec = codec[float64]{
	size: 8,
	decode: func(e endian.EndianEngine, b []byte) float64 {
		return math.Float64frombits(e.Uint64(b))
	},
	encode: func(e endian.EndianEngine, b []byte, v float64) {
		e.PutUint64(b, math.Float64bits(v))
	},
}
