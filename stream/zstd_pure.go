//go:build !gozstd

package stream

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader wraps r with the pure Go Zstandard decompressor.
//
// The decoder runs single-threaded: the Calvin decode path is strictly
// sequential anyway, and one goroutine keeps the forward-only offset
// accounting trivial.
func newZstdReader(r io.Reader) (io.Reader, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("open zstd stream: %w", err)
	}

	return zr.IOReadCloser(), nil
}
