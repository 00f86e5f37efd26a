package buffer

import (
	"fmt"

	"github.com/arloliu/flexbuf/endian"
	"github.com/arloliu/flexbuf/errs"
)

// ByteBuffer is a byte-addressed buffer with a mutable byte order,
// multi-byte scalar accessors and typed view creation.
//
// The byte order applies to the scalar accessors (GetInt32, PutFloat64
// and friends) and is captured by views at creation time; single-byte
// access is order-independent. Unlike a view's order, a ByteBuffer's
// order can be changed at any time with SetOrder.
type ByteBuffer struct {
	Buffer[byte]
	engine endian.EndianEngine
}

// NewByteBuffer allocates a fresh byte array of the given capacity and
// returns a writable byte buffer over it using the given byte order.
//
// Returns errs.ErrInvalidArgument if capacity is negative.
func NewByteBuffer(capacity int, engine endian.EndianEngine) (*ByteBuffer, error) {
	base, err := New[byte](capacity)
	if err != nil {
		return nil, err
	}

	return &ByteBuffer{Buffer: *base, engine: engine}, nil
}

// WrapBytes creates a writable byte buffer over the window
// [offset, offset+length) of an existing byte slice, sharing it without
// copying, using the given byte order.
//
// Returns errs.ErrIndexOutOfBounds if the window does not fit in arr.
func WrapBytes(arr []byte, offset, length int, engine endian.EndianEngine) (*ByteBuffer, error) {
	base, err := Wrap(arr, offset, length)
	if err != nil {
		return nil, err
	}

	return &ByteBuffer{Buffer: *base, engine: engine}, nil
}

// Order returns the byte order used by the scalar accessors.
func (b *ByteBuffer) Order() endian.EndianEngine {
	return b.engine
}

// SetOrder changes the byte order used by the scalar accessors and by
// subsequently created views. Existing views keep the order they were
// created with.
func (b *ByteBuffer) SetOrder(engine endian.EndianEngine) {
	b.engine = engine
}

// Slice returns a byte buffer over the remaining bytes, sharing storage
// and inheriting the byte order and read-only flag.
func (b *ByteBuffer) Slice() *ByteBuffer {
	return &ByteBuffer{Buffer: *b.Buffer.Slice(), engine: b.engine}
}

// Duplicate returns a byte buffer sharing this buffer's storage with an
// independent cursor, inheriting the byte order and read-only flag.
func (b *ByteBuffer) Duplicate() *ByteBuffer {
	return &ByteBuffer{Buffer: *b.Buffer.Duplicate(), engine: b.engine}
}

// AsReadOnly returns a read-only byte buffer sharing this buffer's
// storage with an independent cursor, inheriting the byte order.
func (b *ByteBuffer) AsReadOnly() *ByteBuffer {
	return &ByteBuffer{Buffer: *b.Buffer.AsReadOnly(), engine: b.engine}
}

// PutByteBuffer transfers every remaining byte of src into this buffer.
// It has PutBuffer's semantics: length is validated before any byte
// moves, and transferring a buffer into itself fails with
// errs.ErrSameBuffer.
func (b *ByteBuffer) PutByteBuffer(src *ByteBuffer) error {
	return b.Buffer.PutBuffer(&src.Buffer)
}

// window exposes the raw bytes backing [index, index+size). The cursor
// state has already validated the range; ByteBuffer storage is always a
// shared byte array.
func (b *ByteBuffer) window(index, size int) []byte {
	hs, ok := b.store.(heapStorage[byte])
	if !ok {
		panic(fmt.Sprintf("flexbuf: byte buffer backed by %T instead of a byte array", b.store))
	}

	off := hs.offset + index

	return hs.arr[off : off+size]
}

// getScalar decodes one multi-byte value at the current position using
// the buffer's order and advances the position by the value's width.
func getScalar[U Scalar](b *ByteBuffer, c codec[U]) (U, error) {
	idx, err := b.nextIndex(c.size)
	if err != nil {
		var zero U
		return zero, err
	}

	return c.decode(b.engine, b.window(idx, c.size)), nil
}

// getScalarAt decodes one multi-byte value at an absolute byte index
// without moving the position.
func getScalarAt[U Scalar](b *ByteBuffer, c codec[U], i int) (U, error) {
	if err := b.checkIndex(i, c.size); err != nil {
		var zero U
		return zero, err
	}

	return c.decode(b.engine, b.window(i, c.size)), nil
}

// putScalar encodes one multi-byte value at the current position using
// the buffer's order and advances the position by the value's width.
func putScalar[U Scalar](b *ByteBuffer, c codec[U], v U) error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	idx, err := b.nextPutIndex(c.size)
	if err != nil {
		return err
	}

	c.encode(b.engine, b.window(idx, c.size), v)

	return nil
}

// putScalarAt encodes one multi-byte value at an absolute byte index
// without moving the position.
func putScalarAt[U Scalar](b *ByteBuffer, c codec[U], i int, v U) error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	if err := b.checkIndex(i, c.size); err != nil {
		return err
	}

	c.encode(b.engine, b.window(i, c.size), v)

	return nil
}

// GetInt16 reads the next two bytes as an int16 in the buffer's order.
func (b *ByteBuffer) GetInt16() (int16, error) { return getScalar(b, int16Codec) }

// GetInt16At reads two bytes at the absolute index i as an int16.
func (b *ByteBuffer) GetInt16At(i int) (int16, error) { return getScalarAt(b, int16Codec, i) }

// PutInt16 writes v as two bytes at the current position.
func (b *ByteBuffer) PutInt16(v int16) error { return putScalar(b, int16Codec, v) }

// PutInt16At writes v as two bytes at the absolute index i.
func (b *ByteBuffer) PutInt16At(i int, v int16) error { return putScalarAt(b, int16Codec, i, v) }

// GetUint16 reads the next two bytes as a uint16 in the buffer's order.
func (b *ByteBuffer) GetUint16() (uint16, error) { return getScalar(b, uint16Codec) }

// GetUint16At reads two bytes at the absolute index i as a uint16.
func (b *ByteBuffer) GetUint16At(i int) (uint16, error) { return getScalarAt(b, uint16Codec, i) }

// PutUint16 writes v as two bytes at the current position.
func (b *ByteBuffer) PutUint16(v uint16) error { return putScalar(b, uint16Codec, v) }

// PutUint16At writes v as two bytes at the absolute index i.
func (b *ByteBuffer) PutUint16At(i int, v uint16) error { return putScalarAt(b, uint16Codec, i, v) }

// GetInt32 reads the next four bytes as an int32 in the buffer's order.
func (b *ByteBuffer) GetInt32() (int32, error) { return getScalar(b, int32Codec) }

// GetInt32At reads four bytes at the absolute index i as an int32.
func (b *ByteBuffer) GetInt32At(i int) (int32, error) { return getScalarAt(b, int32Codec, i) }

// PutInt32 writes v as four bytes at the current position.
func (b *ByteBuffer) PutInt32(v int32) error { return putScalar(b, int32Codec, v) }

// PutInt32At writes v as four bytes at the absolute index i.
func (b *ByteBuffer) PutInt32At(i int, v int32) error { return putScalarAt(b, int32Codec, i, v) }

// GetInt64 reads the next eight bytes as an int64 in the buffer's order.
func (b *ByteBuffer) GetInt64() (int64, error) { return getScalar(b, int64Codec) }

// GetInt64At reads eight bytes at the absolute index i as an int64.
func (b *ByteBuffer) GetInt64At(i int) (int64, error) { return getScalarAt(b, int64Codec, i) }

// PutInt64 writes v as eight bytes at the current position.
func (b *ByteBuffer) PutInt64(v int64) error { return putScalar(b, int64Codec, v) }

// PutInt64At writes v as eight bytes at the absolute index i.
func (b *ByteBuffer) PutInt64At(i int, v int64) error { return putScalarAt(b, int64Codec, i, v) }

// GetFloat32 reads the next four bytes as a float32 bit pattern in the
// buffer's order.
func (b *ByteBuffer) GetFloat32() (float32, error) { return getScalar(b, float32Codec) }

// GetFloat32At reads four bytes at the absolute index i as a float32.
func (b *ByteBuffer) GetFloat32At(i int) (float32, error) { return getScalarAt(b, float32Codec, i) }

// PutFloat32 writes the raw bits of v as four bytes at the current position.
func (b *ByteBuffer) PutFloat32(v float32) error { return putScalar(b, float32Codec, v) }

// PutFloat32At writes the raw bits of v as four bytes at the absolute index i.
func (b *ByteBuffer) PutFloat32At(i int, v float32) error { return putScalarAt(b, float32Codec, i, v) }

// GetFloat64 reads the next eight bytes as a float64 bit pattern in the
// buffer's order.
func (b *ByteBuffer) GetFloat64() (float64, error) { return getScalar(b, float64Codec) }

// GetFloat64At reads eight bytes at the absolute index i as a float64.
func (b *ByteBuffer) GetFloat64At(i int) (float64, error) { return getScalarAt(b, float64Codec, i) }

// PutFloat64 writes the raw bits of v as eight bytes at the current position.
func (b *ByteBuffer) PutFloat64(v float64) error { return putScalar(b, float64Codec, v) }

// PutFloat64At writes the raw bits of v as eight bytes at the absolute index i.
func (b *ByteBuffer) PutFloat64At(i int, v float64) error { return putScalarAt(b, float64Codec, i, v) }
