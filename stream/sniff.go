package stream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/format"
)

// Container magic bytes of the supported transport compressions.
var (
	magicGzip = []byte{0x1F, 0x8B}
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
	magicXZ   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// sniffLen is the longest magic prefix we need to look at.
const sniffLen = 6

// Sniff inspects the leading bytes of a file and reports its transport
// compression. Anything without a recognized container magic is treated as
// an uncompressed Calvin file.
func Sniff(prefix []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(prefix, magicGzip):
		return format.CompressionGzip
	case bytes.HasPrefix(prefix, magicZstd):
		return format.CompressionZstd
	case bytes.HasPrefix(prefix, magicLZ4):
		return format.CompressionLZ4
	case bytes.HasPrefix(prefix, magicXZ):
		return format.CompressionXZ
	default:
		return format.CompressionNone
	}
}

// New creates the appropriate backend for r: the random-access FileStream
// when r holds uncompressed content, or a forward-only CompressedStream over
// the matching decompressor otherwise. The compression is sniffed from the
// first bytes of r; r must be positioned at the start of the file.
func New(r io.ReadSeeker) (Reader, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("determine stream position: %w", err)
	}

	prefix := make([]byte, sniffLen)
	n, err := io.ReadFull(r, prefix)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("sniff compression: %w", err)
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind after sniff: %w", err)
	}

	return NewWith(r, Sniff(prefix[:n]))
}

// NewWith creates a backend for r with an explicitly chosen compression
// type, bypassing sniffing. With format.CompressionNone, r must implement
// io.ReadSeeker to get the random-access backend; a plain io.Reader falls
// back to the forward-only backend over the raw bytes.
func NewWith(r io.Reader, compression format.CompressionType) (Reader, error) {
	if compression == format.CompressionNone {
		if rs, ok := r.(io.ReadSeeker); ok {
			return NewFileStream(rs)
		}

		return NewCompressedStream(r), nil
	}

	zr, err := newDecompressor(r, compression)
	if err != nil {
		return nil, err
	}

	return NewCompressedStream(zr), nil
}

func newDecompressor(r io.Reader, compression format.CompressionType) (io.Reader, error) {
	switch compression {
	case format.CompressionGzip:
		return newGzipReader(r)
	case format.CompressionZstd:
		return newZstdReader(r)
	case format.CompressionLZ4:
		return newLZ4Reader(r)
	case format.CompressionXZ:
		return newXZReader(r)
	default:
		return nil, fmt.Errorf("compression %s: %w", compression, errs.ErrUnknownCompression)
	}
}
