package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("x1 + x2"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, []byte("x1 + x2"), bb.Bytes())

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("grows by default size for small buffers", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, 1, 2, 3)
		bb.Grow(16)
		assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 16)
		assert.Equal(t, []byte{1, 2, 3}, bb.Bytes(), "Grow should preserve content")
	})

	t.Run("grows to at least the required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize*3)
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Len(), "pooled buffers must come back empty")

	p.Put(nil)
	p.Put(NewByteBuffer(1024)) // over threshold, dropped silently
}

func TestPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutPayloadBuffer(bb)
}
