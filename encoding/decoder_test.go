package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/internal/testenc"
	"github.com/arloliu/calvin/stream"
)

func newTestDecoder(t *testing.T, data []byte) *Decoder {
	t.Helper()

	fs, err := stream.NewFileStream(bytes.NewReader(data))
	require.NoError(t, err)

	return NewDecoder(fs)
}

func TestNumericRoundTrip(t *testing.T) {
	b := testenc.NewBuilder().
		U8(0xAB).
		I8(-5).
		U16(0xBEEF).
		I16(-12345).
		U32(0xDEADBEEF).
		I32(-123456789).
		F32(3.25)

	d := newTestDecoder(t, b.Bytes())

	u8, err := d.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	i8, err := d.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	u16, err := d.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)

	i16, err := d.Int16()
	require.NoError(t, err)
	require.Equal(t, int16(-12345), i16)

	u32, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	i32, err := d.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-123456789), i32)

	f32, err := d.Float32()
	require.NoError(t, err)
	require.Equal(t, float32(3.25), f32)

	require.Equal(t, int64(len(b.Bytes())), d.Offset())
}

func TestByteString(t *testing.T) {
	t.Run("NonEmpty", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().ByteString("calvin").Bytes())

		s, err := d.ByteString()
		require.NoError(t, err)
		require.Equal(t, int32(6), s.Len)
		require.Equal(t, "calvin", s.String())
	})

	t.Run("Empty", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().ByteString("").U8(0x7F).Bytes())

		s, err := d.ByteString()
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
		require.Nil(t, s.Value)
		// The zero length consumed only the prefix.
		require.Equal(t, int64(4), d.Offset())
	})

	t.Run("NegativeLength", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().I32(-1).Bytes())

		_, err := d.ByteString()
		require.ErrorIs(t, err, errs.ErrInvalidStringLength)
	})

	t.Run("Truncated", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().I32(100).Raw([]byte("short")).Bytes())

		_, err := d.ByteString()
		require.ErrorIs(t, err, errs.ErrTruncatedStream)
	})
}

func TestWideString(t *testing.T) {
	t.Run("NonEmpty", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().WideString("en-US").Bytes())

		s, err := d.WideString()
		require.NoError(t, err)
		require.Equal(t, int32(5), s.Len)
		require.Equal(t, "en-US", s.String())
		require.True(t, s.Equal("en-US"))
	})

	t.Run("Empty", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().WideString("").Bytes())

		s, err := d.WideString()
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
		require.Equal(t, "", s.String())
	})

	t.Run("NonASCII", func(t *testing.T) {
		d := newTestDecoder(t, testenc.NewBuilder().WideString("müller").Bytes())

		s, err := d.WideString()
		require.NoError(t, err)
		require.Equal(t, "müller", s.String())
	})
}

func TestFixedWidthStrings(t *testing.T) {
	// The cursor must land exactly width bytes past the length prefix for
	// every embedded length, including zero.
	t.Run("ByteStringPadded", func(t *testing.T) {
		b := testenc.NewBuilder().ByteStringFixed("ab", 16).U8(0xEE)
		d := newTestDecoder(t, b.Bytes())

		s, err := d.ByteStringFixed(12)
		require.NoError(t, err)
		require.Equal(t, "ab", s.String())
		require.Equal(t, int64(16), d.Offset())

		sentinel, err := d.Uint8()
		require.NoError(t, err)
		require.Equal(t, uint8(0xEE), sentinel)
	})

	t.Run("ByteStringZeroLength", func(t *testing.T) {
		b := testenc.NewBuilder().ByteStringFixed("", 16).U8(0xEE)
		d := newTestDecoder(t, b.Bytes())

		s, err := d.ByteStringFixed(12)
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
		require.Equal(t, int64(16), d.Offset())
	})

	t.Run("ByteStringFullWidth", func(t *testing.T) {
		b := testenc.NewBuilder().ByteStringFixed("exactlytwelve", 17)
		d := newTestDecoder(t, b.Bytes())

		s, err := d.ByteStringFixed(13)
		require.NoError(t, err)
		require.Equal(t, "exactlytwelve", s.String())
		require.Equal(t, int64(17), d.Offset())
	})

	t.Run("WideStringPadded", func(t *testing.T) {
		b := testenc.NewBuilder().WideStringFixed("ab", 16).U8(0xEE)
		d := newTestDecoder(t, b.Bytes())

		s, err := d.WideStringFixed(12)
		require.NoError(t, err)
		require.Equal(t, "ab", s.String())
		require.Equal(t, int64(16), d.Offset())
	})

	t.Run("WideStringZeroLength", func(t *testing.T) {
		b := testenc.NewBuilder().WideStringFixed("", 16).U8(0xEE)
		d := newTestDecoder(t, b.Bytes())

		s, err := d.WideStringFixed(12)
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
		require.Equal(t, int64(16), d.Offset())
	})
}

func TestTruncatedPrimitives(t *testing.T) {
	d := newTestDecoder(t, []byte{0x01})

	_, err := d.Uint32()
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}
