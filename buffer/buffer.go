package buffer

import (
	"fmt"

	"github.com/arloliu/flexbuf/errs"
)

// Buffer is a cursor-addressed, fixed-capacity buffer of elements of
// type T. It composes the cursor state machine with a storage accessor
// and a per-instance read-only flag checked before every write path.
//
// The zero value is not usable; create buffers with New or Wrap, or
// derive them from an existing buffer with Slice, Duplicate or
// AsReadOnly.
type Buffer[T Scalar] struct {
	state
	store    storage[T]
	readOnly bool
}

// New allocates a fresh backing array of the given capacity and returns
// a writable buffer over it with position 0 and limit equal to capacity.
//
// Returns errs.ErrInvalidArgument if capacity is negative.
func New[T Scalar](capacity int) (*Buffer[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidArgument, capacity)
	}

	return &Buffer[T]{
		state: newState(0, capacity, capacity),
		store: heapStorage[T]{arr: make([]T, capacity)},
	}, nil
}

// Wrap creates a writable buffer over the window
// [offset, offset+length) of an existing array, sharing it without
// copying. The buffer's element 0 is arr[offset]; position starts at 0
// and limit and capacity equal length. Mutations through the buffer are
// visible in arr and vice versa.
//
// Returns errs.ErrIndexOutOfBounds if the window does not fit in arr.
func Wrap[T Scalar](arr []T, offset, length int) (*Buffer[T], error) {
	if offset < 0 || length < 0 || offset+length > len(arr) {
		return nil, fmt.Errorf("%w: window [%d, %d) exceeds array length %d",
			errs.ErrIndexOutOfBounds, offset, offset+length, len(arr))
	}

	return &Buffer[T]{
		state: newState(0, length, length),
		store: heapStorage[T]{arr: arr, offset: offset},
	}, nil
}

// Get returns the element at the current position and advances the
// position by one.
//
// Returns errs.ErrBufferUnderflow if no elements remain.
func (b *Buffer[T]) Get() (T, error) {
	idx, err := b.nextIndex(1)
	if err != nil {
		var zero T
		return zero, err
	}

	return b.store.load(idx), nil
}

// GetAt returns the element at the given absolute index without moving
// the position.
//
// Returns errs.ErrIndexOutOfBounds if i is outside [0, limit).
func (b *Buffer[T]) GetAt(i int) (T, error) {
	if err := b.checkIndex(i, 1); err != nil {
		var zero T
		return zero, err
	}

	return b.store.load(i), nil
}

// GetSlice bulk-copies length elements from the current position into
// dst starting at dstOffset and advances the position by length.
//
// The copy is all-or-nothing: both ranges are validated before any
// element moves. Returns errs.ErrIndexOutOfBounds if the dst range is
// invalid, or errs.ErrBufferUnderflow if fewer than length elements
// remain.
func (b *Buffer[T]) GetSlice(dst []T, dstOffset, length int) error {
	if err := checkSliceRange(len(dst), dstOffset, length); err != nil {
		return err
	}

	idx, err := b.nextIndex(length)
	if err != nil {
		return err
	}

	b.store.loadRange(idx, dst[dstOffset:dstOffset+length])

	return nil
}

// Put writes the element at the current position and advances the
// position by one.
//
// Returns errs.ErrReadOnlyBuffer on a read-only buffer, or
// errs.ErrBufferOverflow if no room remains.
func (b *Buffer[T]) Put(v T) error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	idx, err := b.nextPutIndex(1)
	if err != nil {
		return err
	}

	b.store.store(idx, v)

	return nil
}

// PutAt writes the element at the given absolute index without moving
// the position.
//
// Returns errs.ErrReadOnlyBuffer on a read-only buffer, or
// errs.ErrIndexOutOfBounds if i is outside [0, limit).
func (b *Buffer[T]) PutAt(i int, v T) error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	if err := b.checkIndex(i, 1); err != nil {
		return err
	}

	b.store.store(i, v)

	return nil
}

// PutSlice bulk-copies length elements from src starting at srcOffset
// into the buffer at the current position and advances the position by
// length. All-or-nothing, like GetSlice.
//
// Returns errs.ErrReadOnlyBuffer on a read-only buffer,
// errs.ErrIndexOutOfBounds if the src range is invalid, or
// errs.ErrBufferOverflow if fewer than length elements remain.
func (b *Buffer[T]) PutSlice(src []T, srcOffset, length int) error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	if err := checkSliceRange(len(src), srcOffset, length); err != nil {
		return err
	}

	idx, err := b.nextPutIndex(length)
	if err != nil {
		return err
	}

	b.store.storeRange(idx, src[srcOffset:srcOffset+length])

	return nil
}

// PutBuffer transfers every remaining element of src into this buffer,
// advancing both positions by the transfer count.
//
// When both buffers are array-addressable the transfer is a single
// array-to-array copy; otherwise it degrades to an element-by-element
// transfer through the storage accessors. Either way the length is
// validated first, so a failed call moves neither cursor.
//
// Returns errs.ErrReadOnlyBuffer on a read-only buffer,
// errs.ErrSameBuffer if src is this buffer, or errs.ErrBufferOverflow
// if src has more remaining elements than this buffer has room for.
func (b *Buffer[T]) PutBuffer(src *Buffer[T]) error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	if src == b {
		return errs.ErrSameBuffer
	}

	n := src.Remaining()
	if n > b.Remaining() {
		return fmt.Errorf("%w: source has %d elements, %d remaining", errs.ErrBufferOverflow, n, b.Remaining())
	}

	srcArr, srcOff, srcOK := src.store.array()
	dstArr, dstOff, dstOK := b.store.array()
	if srcOK && dstOK {
		copy(dstArr[dstOff+b.position:dstOff+b.position+n], srcArr[srcOff+src.position:srcOff+src.position+n])
	} else {
		for i := 0; i < n; i++ {
			b.store.store(b.position+i, src.store.load(src.position+i))
		}
	}

	b.position += n
	src.position += n

	return nil
}

// Slice returns a new buffer over the remaining elements of this
// buffer, sharing storage: its element 0 is this buffer's element at
// the current position, its position is 0 and its limit and capacity
// equal Remaining(). The read-only flag is inherited. This buffer's
// cursor is untouched.
func (b *Buffer[T]) Slice() *Buffer[T] {
	rem := b.Remaining()

	return &Buffer[T]{
		state:    newState(0, rem, rem),
		store:    b.store.rebase(b.position),
		readOnly: b.readOnly,
	}
}

// Duplicate returns a new buffer sharing this buffer's storage with an
// identical but independent mark/position/limit/capacity tuple. The
// read-only flag is inherited.
func (b *Buffer[T]) Duplicate() *Buffer[T] {
	return &Buffer[T]{
		state:    b.state,
		store:    b.store,
		readOnly: b.readOnly,
	}
}

// AsReadOnly returns a read-only buffer sharing this buffer's storage
// with an independent cursor. The result rejects every mutation,
// regardless of this buffer's own flag; content changes made through
// writable aliases remain visible through it.
func (b *Buffer[T]) AsReadOnly() *Buffer[T] {
	ro := b.Duplicate()
	ro.readOnly = true

	return ro
}

// Compact copies the remaining elements down to the start of the
// buffer, sets the position to the number of elements copied, raises
// the limit to the capacity and discards the mark. It is used to shift
// unread data to the front after a partial consume, making room for
// further writes.
//
// Returns errs.ErrReadOnlyBuffer on a read-only buffer.
func (b *Buffer[T]) Compact() error {
	if b.readOnly {
		return errs.ErrReadOnlyBuffer
	}

	rem := b.Remaining()
	b.store.moveRange(0, b.position, rem)
	b.position = rem
	b.limit = b.capacity
	b.mark = markUnset

	return nil
}

// IsReadOnly reports whether this buffer rejects mutation.
func (b *Buffer[T]) IsReadOnly() bool {
	return b.readOnly
}

// IsDirect reports whether this buffer is backed by native memory
// outside the Go heap. Always false for this family.
func (b *Buffer[T]) IsDirect() bool {
	return false
}

// checkSliceRange validates the [offset, offset+length) window of a
// caller-supplied slice of the given length.
func checkSliceRange(sliceLen, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > sliceLen {
		return fmt.Errorf("%w: range [%d, %d) exceeds slice length %d",
			errs.ErrIndexOutOfBounds, offset, offset+length, sliceLen)
	}

	return nil
}
