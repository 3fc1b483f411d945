package encoding

import "unicode/utf16"

// ByteString is a length-prefixed sequence of raw bytes. A zero Len means an
// absent payload; Value is nil in that case.
type ByteString struct {
	Len   int32
	Value []byte
}

// String returns the payload as a Go string. Calvin byte strings hold ASCII
// identifiers, so no charset conversion is involved.
func (s ByteString) String() string {
	return string(s.Value)
}

// IsEmpty reports whether the string has no payload.
func (s ByteString) IsEmpty() bool {
	return s.Len == 0
}

// MakeByteString wraps raw bytes as a ByteString.
func MakeByteString(b []byte) ByteString {
	if len(b) == 0 {
		return ByteString{}
	}

	return ByteString{Len: int32(len(b)), Value: b}
}

// WideString is a length-prefixed sequence of 16-bit code units, stored
// big-endian on disk and held in host order in Value. A zero Len means an
// absent payload; Value is nil in that case.
type WideString struct {
	Len   int32
	Value []uint16
}

// String decodes the UTF-16 code units into a Go string.
func (s WideString) String() string {
	if s.Len == 0 {
		return ""
	}

	return string(utf16.Decode(s.Value))
}

// IsEmpty reports whether the string has no payload.
func (s WideString) IsEmpty() bool {
	return s.Len == 0
}

// Equal reports whether the wide string decodes to the given Go string.
func (s WideString) Equal(text string) bool {
	return s.String() == text
}

// MakeWideString encodes a Go string as a WideString in host order.
func MakeWideString(s string) WideString {
	if s == "" {
		return WideString{}
	}

	units := utf16.Encode([]rune(s))

	return WideString{Len: int32(len(units)), Value: units}
}
