// Package buffer implements cursor-addressed, fixed-capacity buffers over
// contiguous in-memory storage, with scalar and bulk access for every
// primitive element width, endianness-aware decoding, read-only
// projections, and zero-copy typed views.
//
// # Buffer Model
//
// Every buffer carries four cursor values ordered by the invariant
//
//	-1 <= mark <= position <= limit <= capacity
//
// where capacity is fixed at creation, limit bounds the valid elements,
// position is the next index for sequential access, and mark is a saved
// position for Reset (-1 when unset). Every operation preserves this
// ordering; operations that would violate it fail without mutating state.
//
// # Buffer Variants
//
// Buffer[T] is the generic read-write buffer over a shared []T array.
// A read-only projection (AsReadOnly) shares the same array and rejects
// every mutation with errs.ErrReadOnlyBuffer. ByteBuffer specializes
// Buffer[byte] with a mutable byte order, multi-byte scalar accessors,
// and typed views (AsInt32Buffer and friends) that reinterpret the
// remaining bytes at a wider element width without copying.
//
// Slices, duplicates, read-only projections and views all alias the same
// backing array: a write through any of them is visible through all of
// them. Cursor state is per-instance and never shared.
//
// # Concurrency
//
// Buffers are unsynchronized by design. Concurrent mutation of a single
// buffer instance is a caller error with undefined outcome. Using
// different instances that share one backing array from multiple
// goroutines is memory-safe (all access is bounds-checked), but writes
// race with reads on the shared content: a reader may observe a
// partially written multi-byte scalar at an overlapping offset. Callers
// that need a consistent view must provide their own synchronization.
package buffer
