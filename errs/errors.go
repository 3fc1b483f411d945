// Package errs defines the sentinel errors shared across the calvin packages.
//
// All structural decode failures wrap one of these sentinels, so callers can
// classify failures with errors.Is regardless of which layer produced them.
package errs

import "errors"

var (
	// ErrInvalidMagicNumber indicates the file does not start with the Calvin
	// magic byte (59). The parse aborts before any further reads.
	ErrInvalidMagicNumber = errors.New("invalid magic number, not a calvin file")

	// ErrInvalidVersion indicates a file header version other than 1.
	ErrInvalidVersion = errors.New("unsupported calvin file version")

	// ErrTruncatedStream indicates the stream ended in the middle of a record.
	// No partial value is ever returned alongside this error.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrInvalidStringLength indicates a negative string length prefix.
	ErrInvalidStringLength = errors.New("invalid string length")

	// ErrInvalidColumnType indicates a column type code outside the nine-value
	// range 0-8. Fatal for the data set being read.
	ErrInvalidColumnType = errors.New("invalid column type code")

	// ErrUnknownMIMEType indicates an unrecognized MIME type tag on a metadata
	// value. Non-fatal: the value is still decoded with the float32 fallback,
	// and this sentinel is returned alongside it as a diagnostic.
	ErrUnknownMIMEType = errors.New("unknown MIME type")

	// ErrShortValue indicates a numeric metadata value shorter than its 4-byte
	// wire container.
	ErrShortValue = errors.New("metadata value shorter than 4 bytes")

	// ErrBackwardSeek indicates an attempt to seek a forward-only stream to an
	// offset before its current position.
	ErrBackwardSeek = errors.New("backward seek on forward-only stream")

	// ErrUnknownCompression indicates a compression type that has no stream
	// backend registered.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrClosed indicates an operation on a closed file.
	ErrClosed = errors.New("file already closed")
)
