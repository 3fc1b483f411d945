package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/calvin/endian"
	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/internal/pool"
	"github.com/arloliu/calvin/stream"
)

// Decoder decodes primitive Calvin values from a stream backend.
//
// Note: the Decoder is NOT thread-safe. Decoding is strictly sequential; a
// single decoder owns its stream for the duration of a parse.
type Decoder struct {
	r       stream.Reader
	engine  endian.EndianEngine
	scratch [4]byte
}

// NewDecoder creates a decoder over r using the Calvin wire byte order.
func NewDecoder(r stream.Reader) *Decoder {
	return &Decoder{
		r:      r,
		engine: endian.GetBigEndianEngine(),
	}
}

// Offset returns the current absolute stream position.
func (d *Decoder) Offset() int64 {
	return d.r.Offset()
}

// SeekTo repositions the underlying stream to an absolute offset. On the
// forward-only backend this fails with errs.ErrBackwardSeek for offsets
// before the current position.
func (d *Decoder) SeekTo(offset int64) error {
	return d.r.SeekTo(offset)
}

// Skip advances the stream by n bytes.
func (d *Decoder) Skip(n int64) error {
	if n == 0 {
		return nil
	}

	return d.r.SeekTo(d.r.Offset() + n)
}

// Uint8 reads one unsigned byte.
func (d *Decoder) Uint8() (uint8, error) {
	buf := d.scratch[:1]
	if err := d.r.ReadFull(buf); err != nil {
		return 0, err
	}

	return buf[0], nil
}

// Int8 reads one signed byte.
func (d *Decoder) Int8() (int8, error) {
	v, err := d.Uint8()

	return int8(v), err
}

// Uint16 reads a big-endian unsigned 16-bit integer.
func (d *Decoder) Uint16() (uint16, error) {
	buf := d.scratch[:2]
	if err := d.r.ReadFull(buf); err != nil {
		return 0, err
	}

	return d.engine.Uint16(buf), nil
}

// Int16 reads a big-endian signed 16-bit integer.
func (d *Decoder) Int16() (int16, error) {
	v, err := d.Uint16()

	return int16(v), err
}

// Uint32 reads a big-endian unsigned 32-bit integer.
func (d *Decoder) Uint32() (uint32, error) {
	buf := d.scratch[:4]
	if err := d.r.ReadFull(buf); err != nil {
		return 0, err
	}

	return d.engine.Uint32(buf), nil
}

// Int32 reads a big-endian signed 32-bit integer.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()

	return int32(v), err
}

// Float32 reads a big-endian IEEE-754 single-precision float.
func (d *Decoder) Float32() (float32, error) {
	v, err := d.Uint32()

	return math.Float32frombits(v), err
}

// ByteString reads a 32-bit length followed by that many raw bytes. A zero
// length yields an empty string without touching the stream further.
func (d *Decoder) ByteString() (ByteString, error) {
	length, err := d.Int32()
	if err != nil {
		return ByteString{}, err
	}
	if length < 0 {
		return ByteString{}, fmt.Errorf("byte string length %d: %w", length, errs.ErrInvalidStringLength)
	}
	if length == 0 {
		return ByteString{}, nil
	}

	value := make([]byte, length)
	if err := d.r.ReadFull(value); err != nil {
		return ByteString{}, err
	}

	return ByteString{Len: length, Value: value}, nil
}

// WideString reads a 32-bit length followed by that many big-endian 16-bit
// code units, converted to host order. A zero length yields an empty string
// without touching the stream further.
func (d *Decoder) WideString() (WideString, error) {
	length, err := d.Int32()
	if err != nil {
		return WideString{}, err
	}
	if length < 0 {
		return WideString{}, fmt.Errorf("wide string length %d: %w", length, errs.ErrInvalidStringLength)
	}
	if length == 0 {
		return WideString{}, nil
	}

	// The raw big-endian units are only needed until converted, so they
	// come from the scratch pool instead of a per-string allocation.
	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)
	bb.Resize(2 * int(length))

	raw := bb.Bytes()
	if err := d.r.ReadFull(raw); err != nil {
		return WideString{}, err
	}

	value := make([]uint16, length)
	for i := range value {
		value[i] = d.engine.Uint16(raw[2*i:])
	}

	return WideString{Len: length, Value: value}, nil
}

// ByteStringFixed reads a byte string stored in a fixed-width field. width
// is the payload span of the field, excluding its own 4-byte length prefix:
// whatever the embedded length, the cursor ends exactly width bytes past the
// prefix, with the remainder skipped as padding. A zero length skips the
// whole width.
func (d *Decoder) ByteStringFixed(width int32) (ByteString, error) {
	s, err := d.ByteString()
	if err != nil {
		return ByteString{}, err
	}
	if s.Len == 0 {
		return s, d.Skip(int64(width))
	}
	if width > s.Len {
		return s, d.Skip(int64(width - s.Len))
	}

	return s, nil
}

// WideStringFixed reads a wide string stored in a fixed-width field. width
// is the payload span in bytes, excluding the 4-byte length prefix; each
// code unit occupies two of them.
func (d *Decoder) WideStringFixed(width int32) (WideString, error) {
	s, err := d.WideString()
	if err != nil {
		return WideString{}, err
	}
	if s.Len == 0 {
		return s, d.Skip(int64(width))
	}
	if width > 2*s.Len {
		return s, d.Skip(int64(width - 2*s.Len))
	}

	return s, nil
}
