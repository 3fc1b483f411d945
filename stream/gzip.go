package stream

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// newGzipReader wraps r with a streaming gzip decompressor.
func newGzipReader(r io.Reader) (io.Reader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	return zr, nil
}
