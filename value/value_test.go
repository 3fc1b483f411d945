package value

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calvin/encoding"
	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/format"
	"github.com/arloliu/calvin/section"
)

func numericNVT(name, tag string, container uint32) section.NVT {
	return section.NVT{
		Name:  encoding.MakeWideString(name),
		Value: encoding.MakeByteString(binary.BigEndian.AppendUint32(nil, container)),
		Type:  encoding.MakeWideString(tag),
	}
}

func textNVT(name, tag, text string) section.NVT {
	ws := encoding.MakeWideString(text)
	raw := make([]byte, 0, 2*len(ws.Value))
	for _, u := range ws.Value {
		raw = binary.BigEndian.AppendUint16(raw, u)
	}

	return section.NVT{
		Name:  encoding.MakeWideString(name),
		Value: encoding.MakeByteString(raw),
		Type:  encoding.MakeWideString(tag),
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		tag  string
		want format.MIMEType
		ok   bool
	}{
		{TagASCII, format.MIMEASCIIText, true},
		{TagPlain, format.MIMEPlainText, true},
		{TagInt8, format.MIMEInt8, true},
		{TagUint8, format.MIMEUint8, true},
		{TagInt16, format.MIMEInt16, true},
		// The unsigned-16 tag resolves to the signed type; the table keeps
		// the historical mapping the installed base was decoded with.
		{TagUint16, format.MIMEInt16, true},
		{TagInt32, format.MIMEInt32, true},
		{TagUint32, format.MIMEUint32, true},
		{TagFloat32, format.MIMEFloat32, true},
		{"application/x-unknown", format.MIMEFloat32, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := TypeOf(numericNVT("x", tt.tag, 0))
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.ok, ok)
		})
	}
}

func TestNarrowDecode(t *testing.T) {
	// Narrow values come from the low-order bytes of the 4-byte big-endian
	// container: 00 00 00 FF is uint8 255 and int8 -1, not zero.
	v := encoding.MakeByteString([]byte{0x00, 0x00, 0x00, 0xFF})

	u8, err := Uint8(v)
	require.NoError(t, err)
	require.Equal(t, uint8(255), u8)

	i8, err := Int8(v)
	require.NoError(t, err)
	require.Equal(t, int8(-1), i8)

	v16 := encoding.MakeByteString([]byte{0x00, 0x00, 0xFF, 0xFE})

	u16, err := Uint16(v16)
	require.NoError(t, err)
	require.Equal(t, uint16(0xFFFE), u16)

	i16, err := Int16(v16)
	require.NoError(t, err)
	require.Equal(t, int16(-2), i16)
}

func TestWideDecode(t *testing.T) {
	v := encoding.MakeByteString([]byte{0xFF, 0xFE, 0xFD, 0xFC})

	u32, err := Uint32(v)
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFEFDFC), u32)

	i32, err := Int32(v)
	require.NoError(t, err)
	require.Equal(t, int32(-66052), i32)

	f := encoding.MakeByteString([]byte{0x3F, 0xA0, 0x00, 0x00})
	f32, err := Float32(f)
	require.NoError(t, err)
	require.Equal(t, float32(1.25), f32)
}

func TestShortValue(t *testing.T) {
	v := encoding.MakeByteString([]byte{0x01, 0x02})

	_, err := Int32(v)
	require.ErrorIs(t, err, errs.ErrShortValue)

	nvt := section.NVT{
		Name:  encoding.MakeWideString("short"),
		Value: v,
		Type:  encoding.MakeWideString(TagInt32),
	}
	_, err = Decode(nvt)
	require.ErrorIs(t, err, errs.ErrShortValue)
}

func TestText(t *testing.T) {
	require.Equal(t, "hello", Text(textNVT("greet", TagPlain, "hello").Value))
	require.Equal(t, "", Text(encoding.ByteString{}))
}

func TestDecode(t *testing.T) {
	t.Run("Numeric", func(t *testing.T) {
		v, err := Decode(numericNVT("n", TagInt32, 0xFFFFFFFF))
		require.NoError(t, err)
		require.Equal(t, int32(-1), v)
	})

	t.Run("PlainText", func(t *testing.T) {
		v, err := Decode(textNVT("s", TagPlain, "wavelength"))
		require.NoError(t, err)
		require.Equal(t, "wavelength", v)
	})

	t.Run("ASCIIText", func(t *testing.T) {
		nvt := section.NVT{
			Name:  encoding.MakeWideString("a"),
			Value: encoding.MakeByteString([]byte("plain ascii")),
			Type:  encoding.MakeWideString(TagASCII),
		}
		v, err := Decode(nvt)
		require.NoError(t, err)
		require.Equal(t, "plain ascii", v)
	})

	t.Run("Uint16QuirkDecodesSigned", func(t *testing.T) {
		v, err := Decode(numericNVT("q", TagUint16, 0x0000FFFF))
		require.NoError(t, err)
		require.Equal(t, int16(-1), v)
	})

	t.Run("UnknownTagFloatFallback", func(t *testing.T) {
		v, err := Decode(numericNVT("u", "application/x-mystery", 0x3FA00000))
		require.ErrorIs(t, err, errs.ErrUnknownMIMEType)
		// The fallback value is still usable despite the diagnostic.
		require.Equal(t, float32(1.25), v)
	})
}

func TestDescribeHeader(t *testing.T) {
	parent := &section.DataHeader{
		DataTypeID:   encoding.MakeByteString([]byte("parent-type")),
		UniqueFileID: encoding.MakeByteString([]byte("parent-id")),
		NVTs:         []section.NVT{numericNVT("scanner-gain", TagInt32, 7)},
	}
	h := &section.DataHeader{
		DataTypeID:   encoding.MakeByteString([]byte("root-type")),
		UniqueFileID: encoding.MakeByteString([]byte("root-id")),
		DateTime:     encoding.MakeWideString("2026-01-01T00:00:00Z"),
		Locale:       encoding.MakeWideString("en-US"),
		NVTs: []section.NVT{
			textNVT("array-type", TagPlain, "Test3"),
			numericNVT("rows", TagInt32, 64),
		},
		Parents: []*section.DataHeader{parent},
	}

	dump := DescribeHeader(h)
	require.Contains(t, dump, "root-type (id root-id, created 2026-01-01T00:00:00Z, locale en-US)")
	require.Contains(t, dump, "array-type = Test3")
	require.Contains(t, dump, "rows = 64")
	// Parent headers are indented one level deeper.
	require.Contains(t, dump, "  parent-type (id parent-id")
	require.Contains(t, dump, "scanner-gain = 7")
}

func TestDecodeToString(t *testing.T) {
	tests := []struct {
		name string
		nvt  section.NVT
		want string
	}{
		{"Int8", numericNVT("x", TagInt8, 0x000000FF), "-1"},
		{"Uint8", numericNVT("x", TagUint8, 0x000000FF), "255"},
		{"Int32", numericNVT("x", TagInt32, 42), "42"},
		{"Uint32", numericNVT("x", TagUint32, 3000000000), "3000000000"},
		{"Float", numericNVT("x", TagFloat32, 0x3FA00000), "1.250000"},
		{"Plain", textNVT("x", TagPlain, "some text"), "some text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeToString(tt.nvt)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("UnknownTag", func(t *testing.T) {
		got, err := DecodeToString(numericNVT("x", "video/mp4", 0x40200000))
		require.True(t, errors.Is(err, errs.ErrUnknownMIMEType))
		require.Equal(t, "2.500000", got)
	})
}
