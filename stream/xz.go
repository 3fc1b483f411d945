package stream

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// newXZReader wraps r with a streaming XZ decompressor.
func newXZReader(r io.Reader) (io.Reader, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xz stream: %w", err)
	}

	return zr, nil
}
