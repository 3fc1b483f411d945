// Package testenc provides a minimal big-endian byte builder for
// constructing synthetic Calvin files in tests. The module is a decoder
// only, so tests assemble their fixtures byte by byte with this builder
// instead of going through a production encoder.
package testenc

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// Builder accumulates big-endian encoded Calvin structures.
type Builder struct {
	buf bytes.Buffer
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of bytes written so far, i.e. the absolute offset
// the next write will land on.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Bytes returns the assembled content.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// U8 appends an unsigned byte.
func (b *Builder) U8(v uint8) *Builder {
	b.buf.WriteByte(v)
	return b
}

// I8 appends a signed byte.
func (b *Builder) I8(v int8) *Builder {
	return b.U8(uint8(v))
}

// U16 appends a big-endian unsigned 16-bit integer.
func (b *Builder) U16(v uint16) *Builder {
	b.buf.Write(binary.BigEndian.AppendUint16(nil, v))
	return b
}

// I16 appends a big-endian signed 16-bit integer.
func (b *Builder) I16(v int16) *Builder {
	return b.U16(uint16(v))
}

// U32 appends a big-endian unsigned 32-bit integer.
func (b *Builder) U32(v uint32) *Builder {
	b.buf.Write(binary.BigEndian.AppendUint32(nil, v))
	return b
}

// I32 appends a big-endian signed 32-bit integer.
func (b *Builder) I32(v int32) *Builder {
	return b.U32(uint32(v))
}

// F32 appends a big-endian IEEE-754 single-precision float.
func (b *Builder) F32(v float32) *Builder {
	return b.U32(math.Float32bits(v))
}

// Raw appends bytes verbatim.
func (b *Builder) Raw(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

// ByteString appends a length-prefixed byte string.
func (b *Builder) ByteString(s string) *Builder {
	b.I32(int32(len(s)))
	b.buf.WriteString(s)

	return b
}

// WideString appends a length-prefixed wide string: a 32-bit code unit
// count followed by big-endian UTF-16 units.
func (b *Builder) WideString(s string) *Builder {
	units := utf16.Encode([]rune(s))
	b.I32(int32(len(units)))
	for _, u := range units {
		b.U16(u)
	}

	return b
}

// ByteStringFixed appends a byte string cell of a string column whose
// declared size (including the 4-byte length prefix) is size: length
// prefix, payload, then zero padding out to the full field width.
func (b *Builder) ByteStringFixed(s string, size int32) *Builder {
	b.ByteString(s)
	for pad := int(size) - 4 - len(s); pad > 0; pad-- {
		b.buf.WriteByte(0)
	}

	return b
}

// WideStringFixed appends a wide string cell of a string column whose
// declared size (including the 4-byte length prefix) is size.
func (b *Builder) WideStringFixed(s string, size int32) *Builder {
	units := utf16.Encode([]rune(s))
	b.WideString(s)
	for pad := int(size) - 4 - 2*len(units); pad > 0; pad-- {
		b.buf.WriteByte(0)
	}

	return b
}

// NVT appends a (name, value, type) metadata triplet with a raw byte value.
func (b *Builder) NVT(name string, value []byte, mimeType string) *Builder {
	b.WideString(name)
	b.I32(int32(len(value)))
	b.buf.Write(value)
	b.WideString(mimeType)

	return b
}

// TextNVT appends a text/plain triplet whose value is UTF-16BE text, the
// way Calvin stores plain-text metadata.
func (b *Builder) TextNVT(name, text string) *Builder {
	units := utf16.Encode([]rune(text))
	value := make([]byte, 0, 2*len(units))
	for _, u := range units {
		value = binary.BigEndian.AppendUint16(value, u)
	}

	return b.NVT(name, value, "text/plain")
}

// U32NVT appends a numeric triplet with the 4-byte big-endian value
// container every Calvin numeric MIME type uses on disk.
func (b *Builder) U32NVT(name string, value uint32, mimeType string) *Builder {
	return b.NVT(name, binary.BigEndian.AppendUint32(nil, value), mimeType)
}

// ColumnSchema appends a column schema triplet.
func (b *Builder) ColumnSchema(name string, typeCode uint8, size int32) *Builder {
	b.WideString(name)
	b.U8(typeCode)
	b.I32(size)

	return b
}

// FileHeader appends a Calvin file header.
func (b *Builder) FileHeader(magic, version uint8, nGroups int32, firstGroup uint32) *Builder {
	b.U8(magic)
	b.U8(version)
	b.I32(nGroups)
	b.U32(firstGroup)

	return b
}

// DataHeaderStart appends the leading fields of a data header up to and
// including the triplet count; the caller appends nvtCount triplets, then
// calls I32 with the parent count and appends the parents recursively.
func (b *Builder) DataHeaderStart(dataTypeID, uniqueID, dateTime, locale string, nvtCount int32) *Builder {
	b.ByteString(dataTypeID)
	b.ByteString(uniqueID)
	b.WideString(dateTime)
	b.WideString(locale)
	b.I32(nvtCount)

	return b
}

// EmptyDataHeader appends a data header with no triplets and no parents.
func (b *Builder) EmptyDataHeader(dataTypeID string) *Builder {
	b.DataHeaderStart(dataTypeID, "id-"+dataTypeID, "", "", 0)
	b.I32(0)

	return b
}

// PatchU32 overwrites a previously written big-endian 32-bit value at the
// given absolute offset, for fixing up forward offsets after layout is
// known.
func (b *Builder) PatchU32(offset int, v uint32) {
	binary.BigEndian.PutUint32(b.buf.Bytes()[offset:offset+4], v)
}

// U32Slot reserves a 32-bit offset field to be patched once the target
// offset is known, and returns its position.
func (b *Builder) U32Slot() int {
	offset := b.Len()
	b.U32(0)

	return offset
}
