package section

import (
	"github.com/arloliu/calvin/encoding"
	"github.com/arloliu/calvin/format"
)

// NVT is a (name, value, type) metadata triplet. The raw value is kept as
// read from disk; its logical meaning is resolved lazily through the value
// package using the MIME type tag, never eagerly at parse time.
type NVT struct {
	Name  encoding.WideString
	Value encoding.ByteString
	Type  encoding.WideString
}

// ReadNVT reads one metadata triplet: wide name, raw byte value, wide MIME
// type tag, in that order. Any failure aborts the whole triplet.
func ReadNVT(d *encoding.Decoder) (NVT, error) {
	var t NVT
	var err error

	if t.Name, err = d.WideString(); err != nil {
		return NVT{}, err
	}
	if t.Value, err = d.ByteString(); err != nil {
		return NVT{}, err
	}
	if t.Type, err = d.WideString(); err != nil {
		return NVT{}, err
	}

	return t, nil
}

// ColumnSchema describes one column of a data set table: its name, cell
// type code, and the declared on-disk byte size of the stored field. For the
// two string cell types the size spans the whole fixed-width field,
// including the embedded 4-byte length prefix.
type ColumnSchema struct {
	Name encoding.WideString
	Type format.CellType
	Size int32
}

// ReadColumnSchema reads one column schema triplet: wide name, single-byte
// type code, 32-bit declared size, in that order. The type code is validated
// later, when column storage is allocated from the type table.
func ReadColumnSchema(d *encoding.Decoder) (ColumnSchema, error) {
	var c ColumnSchema
	var err error

	if c.Name, err = d.WideString(); err != nil {
		return ColumnSchema{}, err
	}

	code, err := d.Uint8()
	if err != nil {
		return ColumnSchema{}, err
	}
	c.Type = format.CellType(code)

	if c.Size, err = d.Int32(); err != nil {
		return ColumnSchema{}, err
	}

	return c, nil
}
