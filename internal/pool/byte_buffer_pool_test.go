package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)
	bb.WriteLine("some data")
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.WriteString("abcd")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	require.NoError(t, bb.WriteByte('\n'))
	bb.WriteLine("ef")

	require.Equal(t, "abcd\nef\n", string(bb.Bytes()))
	require.Equal(t, 6+2, bb.Len())
	require.Equal(t, 2, bb.LineCount())
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.WriteLine("data")
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffer must be reset")
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := NewByteBuffer(1024)
	p.Put(bb) // must not panic and must not be retained
	p.Put(nil)
}

func TestFileBuffer(t *testing.T) {
	bb := GetFileBuffer()
	require.NotNil(t, bb)
	bb.WriteLine("x")
	PutFileBuffer(bb)
}
