package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)

	// Exactly one of the two predicates holds.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())

	if IsNativeLittleEndian() {
		require.Equal(t, binary.ByteOrder(binary.LittleEndian), order)
	} else {
		require.Equal(t, binary.ByteOrder(binary.BigEndian), order)
	}
}

func TestGetEngines(t *testing.T) {
	big := GetBigEndianEngine()
	little := GetLittleEndianEngine()

	buf := big.AppendUint32(nil, 0x0000003B)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x3B}, buf)
	require.Equal(t, uint32(0x3B), big.Uint32(buf))

	buf = little.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
}

func TestCompareNativeEndian(t *testing.T) {
	require.Equal(t, IsNativeBigEndian(), CompareNativeEndian(GetBigEndianEngine()))
	require.Equal(t, IsNativeLittleEndian(), CompareNativeEndian(GetLittleEndianEngine()))
}
