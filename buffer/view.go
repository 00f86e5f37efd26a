package buffer

// asView builds a typed view over the remaining bytes of b. The view's
// capacity and limit are Remaining()/size whole elements, its position
// is 0, and its byte order is fixed to b's order at the moment of
// creation. It shares b's byte array, so writes through the view are
// visible by reading b at the corresponding byte range and vice versa.
// The read-only flag is inherited from b; b's own cursor is untouched.
func asView[U Scalar](b *ByteBuffer, c codec[U]) *Buffer[U] {
	hs, _ := b.store.(heapStorage[byte])
	capacity := b.Remaining() / c.size

	return &Buffer[U]{
		state: newState(0, capacity, capacity),
		store: viewStorage[U]{
			bytes:  hs.arr,
			base:   hs.offset + b.Position(),
			engine: b.engine,
			codec:  c,
		},
		readOnly: b.readOnly,
	}
}

// AsInt16Buffer returns a view of the remaining bytes as int16
// elements in the buffer's current byte order.
func (b *ByteBuffer) AsInt16Buffer() *Buffer[int16] {
	return asView(b, int16Codec)
}

// AsUint16Buffer returns a view of the remaining bytes as uint16
// elements in the buffer's current byte order.
func (b *ByteBuffer) AsUint16Buffer() *Buffer[uint16] {
	return asView(b, uint16Codec)
}

// AsInt32Buffer returns a view of the remaining bytes as int32
// elements in the buffer's current byte order.
func (b *ByteBuffer) AsInt32Buffer() *Buffer[int32] {
	return asView(b, int32Codec)
}

// AsInt64Buffer returns a view of the remaining bytes as int64
// elements in the buffer's current byte order.
func (b *ByteBuffer) AsInt64Buffer() *Buffer[int64] {
	return asView(b, int64Codec)
}

// AsFloat32Buffer returns a view of the remaining bytes as float32
// elements in the buffer's current byte order.
func (b *ByteBuffer) AsFloat32Buffer() *Buffer[float32] {
	return asView(b, float32Codec)
}

// AsFloat64Buffer returns a view of the remaining bytes as float64
// elements in the buffer's current byte order.
func (b *ByteBuffer) AsFloat64Buffer() *Buffer[float64] {
	return asView(b, float64Codec)
}
