package section

import (
	"fmt"

	"github.com/arloliu/calvin/encoding"
	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/format"
)

// Column is the decoded storage of one data set column: a homogeneous array
// of the column's native cell type, filled row by row from the row-major
// stream. Concrete implementations exist for each of the nine cell types;
// callers type-switch or use the typed accessor on DataSet.
type Column interface {
	// Schema returns the column's on-disk schema.
	Schema() ColumnSchema

	// Rows returns the number of decoded cells.
	Rows() int

	// readCell decodes the next cell from the stream and appends it.
	readCell(d *encoding.Decoder) error
}

// columnTable is the single type-code-to-storage mapping used for both the
// allocation phase and the row decode phase; keeping it in one place means
// the two phases can never disagree on a column's native type.
var columnTable = [...]func(schema ColumnSchema, rows int) Column{
	format.CellInt8:       func(s ColumnSchema, n int) Column { return &Int8Column{schema: s, Values: make([]int8, 0, n)} },
	format.CellUint8:      func(s ColumnSchema, n int) Column { return &Uint8Column{schema: s, Values: make([]uint8, 0, n)} },
	format.CellInt16:      func(s ColumnSchema, n int) Column { return &Int16Column{schema: s, Values: make([]int16, 0, n)} },
	format.CellUint16:     func(s ColumnSchema, n int) Column { return &Uint16Column{schema: s, Values: make([]uint16, 0, n)} },
	format.CellInt32:      func(s ColumnSchema, n int) Column { return &Int32Column{schema: s, Values: make([]int32, 0, n)} },
	format.CellUint32:     func(s ColumnSchema, n int) Column { return &Uint32Column{schema: s, Values: make([]uint32, 0, n)} },
	format.CellFloat32:    func(s ColumnSchema, n int) Column { return &Float32Column{schema: s, Values: make([]float32, 0, n)} },
	format.CellByteString: func(s ColumnSchema, n int) Column { return &ByteStringColumn{schema: s, Values: make([]encoding.ByteString, 0, n)} },
	format.CellWideString: func(s ColumnSchema, n int) Column { return &WideStringColumn{schema: s, Values: make([]encoding.WideString, 0, n)} },
}

// newColumn allocates storage for one column sized for the declared row
// count. A type code outside the table fails with errs.ErrInvalidColumnType.
func newColumn(schema ColumnSchema, rows int) (Column, error) {
	if !schema.Type.Valid() {
		return nil, fmt.Errorf("column %q type code %d: %w", schema.Name.String(), uint8(schema.Type), errs.ErrInvalidColumnType)
	}

	return columnTable[schema.Type](schema, rows), nil
}

// Int8Column holds decoded int8 cells.
type Int8Column struct {
	schema ColumnSchema
	Values []int8
}

func (c *Int8Column) Schema() ColumnSchema { return c.schema }
func (c *Int8Column) Rows() int            { return len(c.Values) }

func (c *Int8Column) readCell(d *encoding.Decoder) error {
	v, err := d.Int8()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// Uint8Column holds decoded uint8 cells.
type Uint8Column struct {
	schema ColumnSchema
	Values []uint8
}

func (c *Uint8Column) Schema() ColumnSchema { return c.schema }
func (c *Uint8Column) Rows() int            { return len(c.Values) }

func (c *Uint8Column) readCell(d *encoding.Decoder) error {
	v, err := d.Uint8()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// Int16Column holds decoded int16 cells.
type Int16Column struct {
	schema ColumnSchema
	Values []int16
}

func (c *Int16Column) Schema() ColumnSchema { return c.schema }
func (c *Int16Column) Rows() int            { return len(c.Values) }

func (c *Int16Column) readCell(d *encoding.Decoder) error {
	v, err := d.Int16()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// Uint16Column holds decoded uint16 cells.
type Uint16Column struct {
	schema ColumnSchema
	Values []uint16
}

func (c *Uint16Column) Schema() ColumnSchema { return c.schema }
func (c *Uint16Column) Rows() int            { return len(c.Values) }

func (c *Uint16Column) readCell(d *encoding.Decoder) error {
	v, err := d.Uint16()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// Int32Column holds decoded int32 cells.
type Int32Column struct {
	schema ColumnSchema
	Values []int32
}

func (c *Int32Column) Schema() ColumnSchema { return c.schema }
func (c *Int32Column) Rows() int            { return len(c.Values) }

func (c *Int32Column) readCell(d *encoding.Decoder) error {
	v, err := d.Int32()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// Uint32Column holds decoded uint32 cells.
type Uint32Column struct {
	schema ColumnSchema
	Values []uint32
}

func (c *Uint32Column) Schema() ColumnSchema { return c.schema }
func (c *Uint32Column) Rows() int            { return len(c.Values) }

func (c *Uint32Column) readCell(d *encoding.Decoder) error {
	v, err := d.Uint32()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// Float32Column holds decoded float32 cells.
type Float32Column struct {
	schema ColumnSchema
	Values []float32
}

func (c *Float32Column) Schema() ColumnSchema { return c.schema }
func (c *Float32Column) Rows() int            { return len(c.Values) }

func (c *Float32Column) readCell(d *encoding.Decoder) error {
	v, err := d.Float32()
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// ByteStringColumn holds decoded fixed-width byte string cells.
type ByteStringColumn struct {
	schema ColumnSchema
	Values []encoding.ByteString
}

func (c *ByteStringColumn) Schema() ColumnSchema { return c.schema }
func (c *ByteStringColumn) Rows() int            { return len(c.Values) }

func (c *ByteStringColumn) readCell(d *encoding.Decoder) error {
	// The declared size spans the whole field; the embedded 4-byte length
	// prefix is not part of the payload width.
	v, err := d.ByteStringFixed(c.schema.Size - 4)
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}

// WideStringColumn holds decoded fixed-width wide string cells.
type WideStringColumn struct {
	schema ColumnSchema
	Values []encoding.WideString
}

func (c *WideStringColumn) Schema() ColumnSchema { return c.schema }
func (c *WideStringColumn) Rows() int            { return len(c.Values) }

func (c *WideStringColumn) readCell(d *encoding.Decoder) error {
	v, err := d.WideStringFixed(c.schema.Size - 4)
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)

	return nil
}
