package section

import (
	"github.com/arloliu/calvin/encoding"
)

// DataSet is one named, schema-described table of a data group. Rows are
// stored row-major on disk; the decoded Columns hold them column-major, one
// homogeneous array per column.
//
// PosFirst is the absolute offset where the row data begins and PosLast the
// absolute offset immediately past it. PosLast is authoritative for
// repositioning the stream after the rows are consumed, regardless of how
// many bytes the row decode actually advanced.
//
// A data set is owned by whoever reads it and is meant to be dropped as
// soon as its rows are consumed, so peak memory is bounded by one data set
// rather than the whole file.
type DataSet struct {
	PosFirst uint32
	PosLast  uint32
	Name     encoding.WideString
	NVTs     []NVT
	Columns  []Column
	NumRows  uint32
}

// ReadDataSet reads a data set's schema portion at the current position:
// offsets, name, metadata triplets, column schemas and row count, and
// allocates typed column storage sized for the declared row count. Row data
// is not touched; call ReadRows next.
func ReadDataSet(d *encoding.Decoder) (*DataSet, error) {
	ds := &DataSet{}
	var err error

	if ds.PosFirst, err = d.Uint32(); err != nil {
		return nil, err
	}
	if ds.PosLast, err = d.Uint32(); err != nil {
		return nil, err
	}
	if ds.Name, err = d.WideString(); err != nil {
		return nil, err
	}

	numNVT, err := d.Int32()
	if err != nil {
		return nil, err
	}
	if numNVT > 0 {
		ds.NVTs = make([]NVT, 0, numNVT)
		for i := int32(0); i < numNVT; i++ {
			nvt, err := ReadNVT(d)
			if err != nil {
				return nil, err
			}
			ds.NVTs = append(ds.NVTs, nvt)
		}
	}

	numCols, err := d.Uint32()
	if err != nil {
		return nil, err
	}

	schemas := make([]ColumnSchema, 0, numCols)
	for i := uint32(0); i < numCols; i++ {
		schema, err := ReadColumnSchema(d)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, schema)
	}

	if ds.NumRows, err = d.Uint32(); err != nil {
		return nil, err
	}

	ds.Columns = make([]Column, 0, numCols)
	for _, schema := range schemas {
		col, err := newColumn(schema, int(ds.NumRows))
		if err != nil {
			return nil, err
		}
		ds.Columns = append(ds.Columns, col)
	}

	return ds, nil
}

// ReadRows decodes the row-major cell stream into the column-major storage
// allocated by ReadDataSet: rows outer, columns inner, each cell decoded
// per its column's type code. Any failed read aborts the whole data set.
func (ds *DataSet) ReadRows(d *encoding.Decoder) error {
	for row := uint32(0); row < ds.NumRows; row++ {
		for _, col := range ds.Columns {
			if err := col.readCell(d); err != nil {
				return err
			}
		}
	}

	return nil
}

// Column returns the decoded column with the given name, or ok=false when
// the data set has no such column.
func (ds *DataSet) Column(name string) (Column, bool) {
	for _, col := range ds.Columns {
		if col.Schema().Name.Equal(name) {
			return col, true
		}
	}

	return nil, false
}
