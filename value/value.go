package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/arloliu/calvin/encoding"
	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/format"
	"github.com/arloliu/calvin/section"
)

// MIME type tags of the Calvin format.
const (
	TagASCII   = "text/ascii"
	TagPlain   = "text/plain"
	TagInt8    = "text/x-calvin-integer-8"
	TagUint8   = "text/x-calvin-unsigned-integer-8"
	TagInt16   = "text/x-calvin-integer-16"
	TagUint16  = "text/x-calvin-unsigned-integer-16"
	TagInt32   = "text/x-calvin-integer-32"
	TagUint32  = "text/x-calvin-unsigned-integer-32"
	TagFloat32 = "text/x-calvin-float"
)

// tagTable maps MIME type tags to logical types. It reproduces the affyio
// table literally: TagUint16 maps to MIMEInt16, not MIMEUint16 (see the
// package comment). MIMEUint16 therefore never comes out of TypeOf, but the
// decoder still handles it for callers that select the type themselves.
var tagTable = map[string]format.MIMEType{
	TagASCII:   format.MIMEASCIIText,
	TagPlain:   format.MIMEPlainText,
	TagInt8:    format.MIMEInt8,
	TagUint8:   format.MIMEUint8,
	TagInt16:   format.MIMEInt16,
	TagUint16:  format.MIMEInt16,
	TagInt32:   format.MIMEInt32,
	TagUint32:  format.MIMEUint32,
	TagFloat32: format.MIMEFloat32,
}

// TypeOf resolves a triplet's MIME type tag to its logical type. An
// unrecognized tag resolves to MIMEFloat32 with ok=false; by contract that
// fallback is a diagnostic, not an error.
func TypeOf(t section.NVT) (mimeType format.MIMEType, ok bool) {
	if mt, found := tagTable[t.Type.String()]; found {
		return mt, true
	}

	return format.MIMEFloat32, false
}

// container extracts the 4-byte big-endian value container every numeric
// MIME type is stored in.
func container(v encoding.ByteString) (uint32, error) {
	if len(v.Value) < 4 {
		return 0, fmt.Errorf("numeric value of %d bytes: %w", len(v.Value), errs.ErrShortValue)
	}

	return binary.BigEndian.Uint32(v.Value[:4]), nil
}

// Int8 decodes a numeric value as a signed 8-bit integer, taken from the
// low-order byte of the 4-byte container.
func Int8(v encoding.ByteString) (int8, error) {
	c, err := container(v)

	return int8(uint8(c)), err
}

// Uint8 decodes a numeric value as an unsigned 8-bit integer.
func Uint8(v encoding.ByteString) (uint8, error) {
	c, err := container(v)

	return uint8(c), err
}

// Int16 decodes a numeric value as a signed 16-bit integer, taken from the
// low-order two bytes of the 4-byte container.
func Int16(v encoding.ByteString) (int16, error) {
	c, err := container(v)

	return int16(uint16(c)), err
}

// Uint16 decodes a numeric value as an unsigned 16-bit integer.
func Uint16(v encoding.ByteString) (uint16, error) {
	c, err := container(v)

	return uint16(c), err
}

// Int32 decodes a numeric value as a signed 32-bit integer.
func Int32(v encoding.ByteString) (int32, error) {
	c, err := container(v)

	return int32(c), err
}

// Uint32 decodes a numeric value as an unsigned 32-bit integer.
func Uint32(v encoding.ByteString) (uint32, error) {
	c, err := container(v)

	return uint32(c), err
}

// Float32 decodes a numeric value as an IEEE-754 single-precision float.
func Float32(v encoding.ByteString) (float32, error) {
	c, err := container(v)

	return math.Float32frombits(c), err
}

// ASCII decodes a text/ascii value as a Go string.
func ASCII(v encoding.ByteString) string {
	return v.String()
}

// Text decodes a text/plain value: a sequence of big-endian 16-bit code
// units, converted to host order and then to a Go string.
func Text(v encoding.ByteString) string {
	units := make([]uint16, len(v.Value)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(v.Value[2*i:])
	}

	return string(utf16.Decode(units))
}

// Decode interprets a triplet's raw value per its MIME type tag and returns
// the narrow native value: a string for the two text types, or one of
// int8/uint8/int16/uint16/int32/uint32/float32.
//
// An unrecognized tag is not fatal: the value is decoded with the float32
// fallback and errs.ErrUnknownMIMEType is returned alongside it as a
// diagnostic. Callers that care can test for it with errors.Is; anyone else
// can use the value as-is.
func Decode(t section.NVT) (any, error) {
	mimeType, known := TypeOf(t)

	v, err := decodeAs(t, mimeType)
	if err != nil {
		return nil, err
	}
	if !known {
		return v, fmt.Errorf("tag %q: %w", t.Type.String(), errs.ErrUnknownMIMEType)
	}

	return v, nil
}

func decodeAs(t section.NVT, mimeType format.MIMEType) (any, error) {
	switch mimeType {
	case format.MIMEASCIIText:
		return ASCII(t.Value), nil
	case format.MIMEPlainText:
		return Text(t.Value), nil
	case format.MIMEInt8:
		return Int8(t.Value)
	case format.MIMEUint8:
		return Uint8(t.Value)
	case format.MIMEInt16:
		return Int16(t.Value)
	case format.MIMEUint16:
		return Uint16(t.Value)
	case format.MIMEInt32:
		return Int32(t.Value)
	case format.MIMEUint32:
		return Uint32(t.Value)
	default:
		return Float32(t.Value)
	}
}

// DecodeToString renders a triplet's value as text whatever its type:
// text values decode as usual, numeric values format in decimal (floats
// with six fractional digits, matching the historical renderer). The
// unknown-tag diagnostic propagates the same way as in Decode.
func DecodeToString(t section.NVT) (string, error) {
	mimeType, known := TypeOf(t)

	var text string
	switch mimeType {
	case format.MIMEASCIIText:
		text = ASCII(t.Value)
	case format.MIMEPlainText:
		text = Text(t.Value)
	default:
		v, err := decodeAs(t, mimeType)
		if err != nil {
			return "", err
		}
		text = formatNumeric(v)
	}

	if !known {
		return text, fmt.Errorf("tag %q: %w", t.Type.String(), errs.ErrUnknownMIMEType)
	}

	return text, nil
}

func formatNumeric(v any) string {
	switch n := v.(type) {
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', 6, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
