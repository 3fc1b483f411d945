// Package pool provides pooled scratch buffers for the decode path.
package pool

import "sync"

const (
	// DiscardBufferSize is the chunk size used when a forward-only stream
	// skips padding or seeks ahead by consuming bytes.
	DiscardBufferSize = 32 * 1024

	// discardBufferMaxThreshold caps the capacity of buffers returned to the
	// pool, so a single oversized skip does not pin memory forever.
	discardBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pool.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Resize grows or shrinks the buffer to exactly n bytes, reallocating only
// when the current capacity is insufficient.
func (bb *ByteBuffer) Resize(n int) {
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
		return
	}
	bb.B = bb.B[:n]
}

var discardPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DiscardBufferSize)}
	},
}

// GetBuffer obtains a scratch buffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := discardPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a scratch buffer to the pool. Buffers that grew past the
// retention threshold are dropped on the floor.
func PutBuffer(bb *ByteBuffer) {
	if cap(bb.B) > discardBufferMaxThreshold {
		return
	}
	discardPool.Put(bb)
}
