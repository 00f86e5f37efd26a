package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/flexbuf/errs"
)

func TestNew(t *testing.T) {
	buf, err := New[int32](10)
	require.NoError(t, err)

	assert.Equal(t, 10, buf.Capacity())
	assert.Equal(t, 0, buf.Position())
	assert.Equal(t, 10, buf.Limit())
	assert.False(t, buf.IsReadOnly())
	assert.False(t, buf.IsDirect())
}

func TestNew_NegativeCapacity(t *testing.T) {
	_, err := New[byte](-1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestWrap(t *testing.T) {
	arr := []int64{10, 20, 30, 40, 50}

	buf, err := Wrap(arr, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Capacity())
	assert.Equal(t, 0, buf.Position())

	// Element 0 of the buffer is arr[1].
	v, err := buf.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(20), v)

	// Writes through the buffer land in the shared array.
	require.NoError(t, buf.Put(99))
	assert.Equal(t, int64(99), arr[2])
}

func TestWrap_InvalidWindow(t *testing.T) {
	arr := make([]byte, 4)

	_, err := Wrap(arr, 3, 2)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
	_, err = Wrap(arr, -1, 2)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
	_, err = Wrap(arr, 0, -1)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
}

// Sequential write, flip, read back in order, then underflow.
func TestBuffer_WriteFlipRead(t *testing.T) {
	buf, err := New[byte](10)
	require.NoError(t, err)

	for _, v := range []byte{0xA, 0xB, 0xC, 0xD} {
		require.NoError(t, buf.Put(v))
	}
	buf.Flip()

	assert.Equal(t, 4, buf.Remaining())
	for _, want := range []byte{0xA, 0xB, 0xC, 0xD} {
		v, err := buf.Get()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	_, err = buf.Get()
	assert.ErrorIs(t, err, errs.ErrBufferUnderflow)
}

func TestBuffer_PutOverflow(t *testing.T) {
	buf, err := New[float32](2)
	require.NoError(t, err)

	require.NoError(t, buf.Put(1.0))
	require.NoError(t, buf.Put(2.0))

	err = buf.Put(3.0)
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
	assert.Equal(t, 2, buf.Position(), "failed put must not move the position")
}

func TestBuffer_AbsoluteAccess(t *testing.T) {
	buf, err := New[int16](4)
	require.NoError(t, err)

	require.NoError(t, buf.PutAt(2, -7))
	assert.Equal(t, 0, buf.Position(), "absolute put must not move the position")

	v, err := buf.GetAt(2)
	require.NoError(t, err)
	assert.Equal(t, int16(-7), v)

	_, err = buf.GetAt(4)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
	assert.ErrorIs(t, buf.PutAt(-1, 0), errs.ErrIndexOutOfBounds)
}

func TestBuffer_GetSlice(t *testing.T) {
	buf, err := New[int32](6)
	require.NoError(t, err)
	require.NoError(t, buf.PutSlice([]int32{1, 2, 3, 4, 5, 6}, 0, 6))
	buf.Flip()

	dst := make([]int32, 5)
	require.NoError(t, buf.GetSlice(dst, 1, 3))
	assert.Equal(t, []int32{0, 1, 2, 3, 0}, dst)
	assert.Equal(t, 3, buf.Position())
}

func TestBuffer_GetSlice_AllOrNothing(t *testing.T) {
	buf, err := New[byte](4)
	require.NoError(t, err)
	require.NoError(t, buf.PutSlice([]byte{1, 2}, 0, 2))
	buf.Flip()

	dst := make([]byte, 8)

	// More than remaining: nothing is copied, position untouched.
	err = buf.GetSlice(dst, 0, 3)
	require.ErrorIs(t, err, errs.ErrBufferUnderflow)
	assert.Equal(t, 0, buf.Position())
	assert.Equal(t, byte(0), dst[0])

	// Invalid destination range.
	err = buf.GetSlice(dst, 7, 2)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
	assert.Equal(t, 0, buf.Position())
}

func TestBuffer_PutSlice_AllOrNothing(t *testing.T) {
	buf, err := New[byte](2)
	require.NoError(t, err)

	err = buf.PutSlice([]byte{1, 2, 3}, 0, 3)
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
	assert.Equal(t, 0, buf.Position())

	v, err := buf.GetAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0), v, "failed bulk put must not write any element")

	err = buf.PutSlice([]byte{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
}

func TestBuffer_PutBuffer(t *testing.T) {
	src, err := New[int32](4)
	require.NoError(t, err)
	require.NoError(t, src.PutSlice([]int32{10, 20, 30}, 0, 3))
	src.Flip()

	dst, err := New[int32](8)
	require.NoError(t, err)

	require.NoError(t, dst.PutBuffer(src))
	assert.Equal(t, 3, dst.Position())
	assert.Equal(t, 0, src.Remaining(), "source must be fully consumed")

	dst.Flip()
	got := make([]int32, 3)
	require.NoError(t, dst.GetSlice(got, 0, 3))
	assert.Equal(t, []int32{10, 20, 30}, got)
}

func TestBuffer_PutBuffer_SameBuffer(t *testing.T) {
	buf, err := New[byte](4)
	require.NoError(t, err)

	err = buf.PutBuffer(buf)
	assert.ErrorIs(t, err, errs.ErrSameBuffer)
	assert.Equal(t, 0, buf.Position())
}

func TestBuffer_PutBuffer_Overflow(t *testing.T) {
	src, err := New[byte](8)
	require.NoError(t, err)
	dst, err := New[byte](4)
	require.NoError(t, err)

	err = dst.PutBuffer(src)
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
	assert.Equal(t, 0, dst.Position())
	assert.Equal(t, 0, src.Position(), "failed transfer must not consume the source")
}

// Slice at position 2: mutations through the slice are visible through
// the original, and slicing leaves the original's cursor untouched.
func TestBuffer_Slice_Aliasing(t *testing.T) {
	buf, err := New[byte](6)
	require.NoError(t, err)
	require.NoError(t, buf.SetPosition(2))

	sl := buf.Slice()
	assert.Equal(t, 4, sl.Capacity())
	assert.Equal(t, 0, sl.Position())
	assert.Equal(t, 2, buf.Position(), "slice creation must not move the original position")
	assert.Equal(t, 6, buf.Limit())

	require.NoError(t, sl.PutAt(0, 0xEE))
	v, err := buf.GetAt(2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xEE), v, "write through slice must be visible in the original")
}

func TestBuffer_Duplicate(t *testing.T) {
	buf, err := New[int64](5)
	require.NoError(t, err)
	require.NoError(t, buf.Put(11))
	require.NoError(t, buf.Put(22))
	buf.Mark()

	dup := buf.Duplicate()
	assert.Equal(t, buf.Position(), dup.Position())
	assert.Equal(t, buf.Limit(), dup.Limit())
	assert.Equal(t, buf.Capacity(), dup.Capacity())
	require.NoError(t, dup.Reset(), "duplicate must inherit the mark")

	// Cursors are independent.
	require.NoError(t, dup.SetPosition(0))
	assert.Equal(t, 2, buf.Position())

	// Storage is shared.
	require.NoError(t, dup.PutAt(4, 99))
	v, err := buf.GetAt(4)
	require.NoError(t, err)
	assert.Equal(t, int64(99), v)
}

func TestBuffer_AsReadOnly(t *testing.T) {
	buf, err := New[byte](4)
	require.NoError(t, err)
	require.NoError(t, buf.PutAt(0, 0x42))

	ro := buf.AsReadOnly()
	assert.True(t, ro.IsReadOnly())

	// Reads work and see the shared content.
	v, err := ro.GetAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), v)

	// Every mutation fails without side effects.
	assert.ErrorIs(t, ro.Put(1), errs.ErrReadOnlyBuffer)
	assert.ErrorIs(t, ro.PutAt(0, 1), errs.ErrReadOnlyBuffer)
	assert.ErrorIs(t, ro.PutSlice([]byte{1}, 0, 1), errs.ErrReadOnlyBuffer)
	assert.ErrorIs(t, ro.PutBuffer(buf), errs.ErrReadOnlyBuffer)
	assert.ErrorIs(t, ro.Compact(), errs.ErrReadOnlyBuffer)
	assert.Equal(t, 0, ro.Position(), "failed mutations must not move the position")

	v, err = buf.GetAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), v, "underlying array must be unchanged")

	// Read-only propagates through further derivations.
	assert.True(t, ro.Slice().IsReadOnly())
	assert.True(t, ro.Duplicate().IsReadOnly())
	assert.True(t, ro.AsReadOnly().IsReadOnly())

	// Writes through the writable original remain visible.
	require.NoError(t, buf.PutAt(1, 0x7F))
	v, err = ro.GetAt(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), v)
}

func TestBuffer_DuplicateReadOnly_StaysReadOnly(t *testing.T) {
	buf, err := New[byte](2)
	require.NoError(t, err)

	dup := buf.AsReadOnly().Duplicate()
	assert.True(t, dup.IsReadOnly(), "duplicating a read-only buffer must not yield a writable alias")
}

// Compact with position=5, limit=8, capacity=10: three elements move to
// the front, position=3, limit=10, mark discarded.
func TestBuffer_Compact(t *testing.T) {
	buf, err := New[byte](10)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		require.NoError(t, buf.Put(byte(i+1)))
	}
	buf.Flip()
	require.NoError(t, buf.SetPosition(5))
	buf.Mark()

	require.NoError(t, buf.Compact())

	assert.Equal(t, 3, buf.Position())
	assert.Equal(t, 10, buf.Limit())
	assert.ErrorIs(t, buf.Reset(), errs.ErrInvalidMark, "compact must discard the mark")

	for i, want := range []byte{6, 7, 8} {
		v, err := buf.GetAt(i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestBuffer_Compact_OverlappingRange(t *testing.T) {
	buf, err := New[int32](8)
	require.NoError(t, err)
	require.NoError(t, buf.PutSlice([]int32{1, 2, 3, 4, 5, 6, 7, 8}, 0, 8))
	buf.Flip()
	require.NoError(t, buf.SetPosition(2))

	require.NoError(t, buf.Compact())

	assert.Equal(t, 6, buf.Position())
	for i, want := range []int32{3, 4, 5, 6, 7, 8} {
		v, err := buf.GetAt(i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestBuffer_FloatBitPatterns(t *testing.T) {
	buf, err := New[float64](3)
	require.NoError(t, err)

	require.NoError(t, buf.Put(-0.0))
	require.NoError(t, buf.Put(1.5))
	buf.Flip()

	v, err := buf.Get()
	require.NoError(t, err)
	assert.Equal(t, -0.0, v)
	v, err = buf.Get()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func BenchmarkBuffer_Put(b *testing.B) {
	buf, _ := New[int64](1024)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		for j := 0; j < 1024; j++ {
			_ = buf.Put(42)
		}
	}
}

func BenchmarkBuffer_GetSlice(b *testing.B) {
	buf, _ := New[float64](1024)
	dst := make([]float64, 1024)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Rewind()
		_ = buf.GetSlice(dst, 0, 1024)
	}
}
