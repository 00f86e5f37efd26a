// Package flexbuf provides cursor-addressed, typed memory buffers over
// contiguous byte-addressable storage.
//
// A buffer is a fixed-capacity window with mark/position/limit cursors,
// bulk and scalar reads and writes for every primitive width,
// endianness-aware decoding, read-only projections and zero-copy typed
// views that reinterpret the same storage at a different element width.
//
// # Core Features
//
//   - One generic buffer type (buffer.Buffer[T]) for every element width
//   - Byte buffers (buffer.ByteBuffer) with mutable byte order and
//     multi-byte scalar accessors
//   - Zero-copy slices, duplicates, read-only projections and typed
//     views that alias one backing array
//   - Strict cursor invariants: -1 <= mark <= position <= limit <= capacity,
//     enforced on every operation
//   - Snapshot frames with optional compression (Zstd, S2, LZ4) and
//     xxHash64 integrity checks
//
// # Basic Usage
//
// Writing then reading back a byte buffer:
//
//	buf, _ := flexbuf.Allocate(64)
//	_ = buf.PutInt32(0x01020304)
//	_ = buf.PutFloat64(3.14)
//	buf.Flip()
//	v, _ := buf.GetInt32()
//
// Reinterpreting bytes as wider elements:
//
//	ints := buf.AsInt32Buffer()
//	first, _ := ints.GetAt(0)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the buffer
// and snapshot packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package flexbuf

import (
	"github.com/arloliu/flexbuf/buffer"
	"github.com/arloliu/flexbuf/endian"
	"github.com/arloliu/flexbuf/snapshot"
)

// Allocate creates a writable byte buffer with a fresh backing array of
// the given capacity and little-endian byte order.
//
// Use buffer.NewByteBuffer directly to choose a different order.
func Allocate(capacity int) (*buffer.ByteBuffer, error) {
	return buffer.NewByteBuffer(capacity, endian.GetLittleEndianEngine())
}

// Wrap creates a writable byte buffer over the whole of data with
// little-endian byte order, sharing data without copying.
func Wrap(data []byte) (*buffer.ByteBuffer, error) {
	return buffer.WrapBytes(data, 0, len(data), endian.GetLittleEndianEngine())
}

// NewBuffer creates a writable buffer of element type T with a fresh
// backing array of the given capacity.
func NewBuffer[T buffer.Scalar](capacity int) (*buffer.Buffer[T], error) {
	return buffer.New[T](capacity)
}

// WrapSlice creates a writable buffer of element type T over the whole
// of arr, sharing arr without copying.
func WrapSlice[T buffer.Scalar](arr []T) (*buffer.Buffer[T], error) {
	return buffer.Wrap(arr, 0, len(arr))
}

// Snapshot serializes the remaining bytes of buf into a self-describing
// frame. See the snapshot package for options.
func Snapshot(buf *buffer.ByteBuffer, opts ...snapshot.Option) ([]byte, error) {
	return snapshot.Encode(buf, opts...)
}

// Restore validates a snapshot frame and rebuilds its payload as a
// fresh writable byte buffer.
func Restore(data []byte) (*buffer.ByteBuffer, error) {
	return snapshot.Decode(data)
}
