//go:build gozstd

package stream

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdReader wraps r with the cgo Zstandard decompressor. Selected with
// the "gozstd" build tag for deployments that already link libzstd.
func newZstdReader(r io.Reader) (io.Reader, error) {
	return gozstd.NewReader(r), nil
}
