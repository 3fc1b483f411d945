package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/internal/pool"
)

// CompressedStream is the forward-only backend. It reads from an already
// decompressing io.Reader and implements SeekTo by consuming bytes, so it
// only supports seeking to offsets at or past the current position.
type CompressedStream struct {
	r      io.Reader
	offset int64
}

var _ Reader = (*CompressedStream)(nil)

// NewCompressedStream creates a forward-only stream over r. The offset
// accounting starts at zero, i.e. r must be positioned at the beginning of
// the logical (decompressed) content.
func NewCompressedStream(r io.Reader) *CompressedStream {
	return &CompressedStream{r: r}
}

// ReadFull fills p entirely from the current position.
func (c *CompressedStream) ReadFull(p []byte) error {
	n, err := io.ReadFull(c.r, p)
	c.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("read %d bytes at offset %d: %w", len(p), c.offset, errs.ErrTruncatedStream)
		}

		return err
	}

	return nil
}

// SeekTo advances the stream to the given absolute offset by discarding the
// intervening bytes. Seeking to the current offset is a no-op; seeking
// backward fails with errs.ErrBackwardSeek.
func (c *CompressedStream) SeekTo(offset int64) error {
	if offset < c.offset {
		return fmt.Errorf("seek to offset %d from %d: %w", offset, c.offset, errs.ErrBackwardSeek)
	}
	if offset == c.offset {
		return nil
	}

	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)
	bb.Resize(pool.DiscardBufferSize)

	remain := offset - c.offset
	for remain > 0 {
		chunk := bb.Bytes()
		if remain < int64(len(chunk)) {
			chunk = chunk[:remain]
		}

		n, err := io.ReadFull(c.r, chunk)
		c.offset += int64(n)
		remain -= int64(n)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("skip to offset %d: %w", offset, errs.ErrTruncatedStream)
			}

			return err
		}
	}

	return nil
}

// Offset returns the current absolute position in the decompressed content.
func (c *CompressedStream) Offset() int64 {
	return c.offset
}
