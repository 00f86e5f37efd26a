package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(SnapshotBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_SliceAndSetLength(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.ExtendOrGrow(8)

	s := bb.Slice(0, 8)
	require.Len(t, s, 8)
	copy(s, "abcdefgh")

	assert.Equal(t, []byte("abcdefgh"), bb.Bytes())

	bb.SetLength(4)
	assert.Equal(t, []byte("abcd"), bb.Bytes())

	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(16)
	initialCap := bb.Cap()

	bb.Grow(8)
	assert.Equal(t, initialCap, bb.Cap(), "Grow should be a no-op when capacity suffices")

	bb.Grow(initialCap + 1)
	assert.GreaterOrEqual(t, bb.Cap(), initialCap+1, "Grow should expand capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Len(), "pooled buffer must be reset")
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024) // exceeds threshold, must be discarded on Put
	p.Put(bb)
	p.Put(nil) // must not panic

	fresh := p.Get()
	assert.LessOrEqual(t, fresh.Cap(), 1024)
}

func TestDefaultSnapshotPool(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutSnapshotBuffer(bb)
}
