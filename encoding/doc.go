// Package encoding implements the primitive value codec of the Calvin wire
// format: fixed-width big-endian integers and floats, length-prefixed byte
// and wide strings, and the fixed-width string variants used for data set
// string columns.
//
// All reads go through a Decoder bound to a stream.Reader, so the same codec
// runs unchanged over the random-access and the forward-only backend. Any
// short read fails with errs.ErrTruncatedStream and returns no partial value.
package encoding
