// Package format defines the enum types and constants of the Calvin
// (Command Console Generic Data) file format.
package format

// File header constants. Every Calvin file starts with the magic byte
// followed by the format version; only version 1 exists.
const (
	MagicNumber uint8 = 59
	Version     uint8 = 1
)

type (
	// CellType is the on-disk type code of a data set column (0-8).
	CellType uint8

	// MIMEType is the logical type of a metadata (name, value, type) triplet,
	// resolved from its MIME type tag.
	MIMEType uint8

	// CompressionType identifies the transport compression of a Calvin file.
	CompressionType uint8
)

// Column type codes as stored in the data set column schema.
const (
	CellInt8       CellType = 0
	CellUint8      CellType = 1
	CellInt16      CellType = 2
	CellUint16     CellType = 3
	CellInt32      CellType = 4
	CellUint32     CellType = 5
	CellFloat32    CellType = 6
	CellByteString CellType = 7 // fixed-width byte string field
	CellWideString CellType = 8 // fixed-width wide (16-bit unit) string field
)

// Logical metadata value types.
const (
	MIMEASCIIText MIMEType = iota
	MIMEPlainText
	MIMEInt8
	MIMEUint8
	MIMEInt16
	MIMEUint16
	MIMEInt32
	MIMEUint32
	MIMEFloat32
)

// Transport compression of the byte source. Calvin data itself is never
// compressed; whole files sometimes are.
const (
	CompressionNone CompressionType = 0
	CompressionGzip CompressionType = 1
	CompressionZstd CompressionType = 2
	CompressionLZ4  CompressionType = 3
	CompressionXZ   CompressionType = 4
)

// Valid reports whether t is one of the nine defined column type codes.
func (t CellType) Valid() bool {
	return t <= CellWideString
}

func (t CellType) String() string {
	switch t {
	case CellInt8:
		return "Int8"
	case CellUint8:
		return "Uint8"
	case CellInt16:
		return "Int16"
	case CellUint16:
		return "Uint16"
	case CellInt32:
		return "Int32"
	case CellUint32:
		return "Uint32"
	case CellFloat32:
		return "Float32"
	case CellByteString:
		return "ByteString"
	case CellWideString:
		return "WideString"
	default:
		return "Unknown"
	}
}

func (m MIMEType) String() string {
	switch m {
	case MIMEASCIIText:
		return "ASCIIText"
	case MIMEPlainText:
		return "PlainText"
	case MIMEInt8:
		return "Int8"
	case MIMEUint8:
		return "Uint8"
	case MIMEInt16:
		return "Int16"
	case MIMEUint16:
		return "Uint16"
	case MIMEInt32:
		return "Int32"
	case MIMEUint32:
		return "Uint32"
	case MIMEFloat32:
		return "Float32"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionXZ:
		return "XZ"
	default:
		return "Unknown"
	}
}
