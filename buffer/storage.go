package buffer

import "github.com/arloliu/flexbuf/endian"

// storage performs the physical transfer for one element width. Callers
// bounds-check every index against the cursor state before delegating,
// so implementations index the shared array without further validation.
//
// A storage value is cheap to copy: it holds a slice header plus fixed
// offsets, never the array itself. Copies made for slices, duplicates
// and views therefore alias the same backing array.
type storage[T Scalar] interface {
	// load returns the element at the logical index.
	load(index int) T

	// store writes the element at the logical index.
	store(index int, v T)

	// loadRange copies len(dst) elements starting at the logical index into dst.
	loadRange(index int, dst []T)

	// storeRange copies src into the store starting at the logical index.
	storeRange(index int, src []T)

	// moveRange copies length elements from srcIndex down to dstIndex
	// within the store. The ranges may overlap.
	moveRange(dstIndex, srcIndex, length int)

	// rebase returns a storage whose logical index 0 maps to the given
	// logical index of this storage, sharing the same backing array.
	rebase(index int) storage[T]

	// array exposes the backing array and element offset for the direct
	// array-to-array fast path, or ok=false when the storage is not
	// array-addressable at this element width.
	array() (arr []T, offset int, ok bool)
}

// heapStorage is storage over a shared []T array with a per-buffer
// element offset, so several buffers can window one array without copying.
type heapStorage[T Scalar] struct {
	arr    []T
	offset int
}

func (s heapStorage[T]) load(index int) T {
	return s.arr[s.offset+index]
}

func (s heapStorage[T]) store(index int, v T) {
	s.arr[s.offset+index] = v
}

func (s heapStorage[T]) loadRange(index int, dst []T) {
	copy(dst, s.arr[s.offset+index:])
}

func (s heapStorage[T]) storeRange(index int, src []T) {
	copy(s.arr[s.offset+index:], src)
}

func (s heapStorage[T]) moveRange(dstIndex, srcIndex, length int) {
	copy(s.arr[s.offset+dstIndex:s.offset+dstIndex+length], s.arr[s.offset+srcIndex:s.offset+srcIndex+length])
}

func (s heapStorage[T]) rebase(index int) storage[T] {
	return heapStorage[T]{arr: s.arr, offset: s.offset + index}
}

func (s heapStorage[T]) array() ([]T, int, bool) {
	return s.arr, s.offset, true
}

// viewStorage is storage of element type T backed by a shared byte
// array: each logical index maps to base + index*size bytes, and every
// transfer decodes or encodes through the codec with the byte order
// fixed at view creation.
type viewStorage[T Scalar] struct {
	bytes  []byte
	base   int
	engine endian.EndianEngine
	codec  codec[T]
}

func (s viewStorage[T]) byteRange(index int) []byte {
	off := s.base + index*s.codec.size
	return s.bytes[off : off+s.codec.size]
}

func (s viewStorage[T]) load(index int) T {
	return s.codec.decode(s.engine, s.byteRange(index))
}

func (s viewStorage[T]) store(index int, v T) {
	s.codec.encode(s.engine, s.byteRange(index), v)
}

func (s viewStorage[T]) loadRange(index int, dst []T) {
	for i := range dst {
		dst[i] = s.load(index + i)
	}
}

func (s viewStorage[T]) storeRange(index int, src []T) {
	for i, v := range src {
		s.store(index+i, v)
	}
}

func (s viewStorage[T]) moveRange(dstIndex, srcIndex, length int) {
	size := s.codec.size
	dst := s.bytes[s.base+dstIndex*size : s.base+(dstIndex+length)*size]
	src := s.bytes[s.base+srcIndex*size : s.base+(srcIndex+length)*size]
	copy(dst, src)
}

func (s viewStorage[T]) rebase(index int) storage[T] {
	return viewStorage[T]{
		bytes:  s.bytes,
		base:   s.base + index*s.codec.size,
		engine: s.engine,
		codec:  s.codec,
	}
}

func (s viewStorage[T]) array() ([]T, int, bool) {
	return nil, 0, false
}
