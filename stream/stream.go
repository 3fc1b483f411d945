package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/calvin/errs"
)

// Reader is the capability set the decoder needs from a byte source.
//
// ReadFull fills p entirely or fails; a short read is reported as
// errs.ErrTruncatedStream and no partial result is exposed. SeekTo
// repositions the stream to an absolute offset. Offset reports the current
// absolute position.
type Reader interface {
	ReadFull(p []byte) error
	SeekTo(offset int64) error
	Offset() int64
}

// FileStream is the random-access backend over an uncompressed byte source.
type FileStream struct {
	r      io.ReadSeeker
	offset int64
}

var _ Reader = (*FileStream)(nil)

// NewFileStream creates a random-access stream over r, starting at r's
// current position.
func NewFileStream(r io.ReadSeeker) (*FileStream, error) {
	offset, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("determine stream position: %w", err)
	}

	return &FileStream{r: r, offset: offset}, nil
}

// ReadFull fills p entirely from the current position.
func (f *FileStream) ReadFull(p []byte) error {
	n, err := io.ReadFull(f.r, p)
	f.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("read %d bytes at offset %d: %w", len(p), f.offset, errs.ErrTruncatedStream)
		}

		return err
	}

	return nil
}

// SeekTo repositions the stream to the given absolute offset.
func (f *FileStream) SeekTo(offset int64) error {
	pos, err := f.r.Seek(offset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("seek to offset %d: %w", offset, err)
	}
	f.offset = pos

	return nil
}

// Offset returns the current absolute position.
func (f *FileStream) Offset() int64 {
	return f.offset
}
