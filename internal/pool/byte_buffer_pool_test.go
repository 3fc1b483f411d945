package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferResize(t *testing.T) {
	bb := &ByteBuffer{}

	bb.Resize(128)
	require.Len(t, bb.Bytes(), 128)

	// Shrinking keeps the backing array.
	p := &bb.B[0]
	bb.Resize(64)
	require.Len(t, bb.Bytes(), 64)
	require.Same(t, p, &bb.B[0])
}

func TestGetPutBuffer(t *testing.T) {
	bb := GetBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.B)

	bb.Resize(DiscardBufferSize)
	PutBuffer(bb)

	again := GetBuffer()
	require.NotNil(t, again)
	require.Empty(t, again.Bytes())
	PutBuffer(again)
}

func TestPutBufferDropsOversized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, discardBufferMaxThreshold+1)}
	// Must not panic; oversized buffers are simply not retained.
	PutBuffer(bb)
}
