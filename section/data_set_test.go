package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/internal/testenc"
)

// allTypesDataSet builds a two-row data set with one column of every cell
// type, testing the full row-major decode in one pass.
func allTypesDataSet() []byte {
	b := testenc.NewBuilder()

	b.U32(0) // pos_first, unused by the direct reader
	b.U32(0) // pos_last
	b.WideString("everything")
	b.I32(1)
	b.TextNVT("purpose", "exercise all cell types")

	b.U32(9)
	b.ColumnSchema("i8", 0, 1)
	b.ColumnSchema("u8", 1, 1)
	b.ColumnSchema("i16", 2, 2)
	b.ColumnSchema("u16", 3, 2)
	b.ColumnSchema("i32", 4, 4)
	b.ColumnSchema("u32", 5, 4)
	b.ColumnSchema("f32", 6, 4)
	b.ColumnSchema("bstr", 7, 12) // 4-byte prefix + 8 payload bytes
	b.ColumnSchema("wstr", 8, 12) // 4-byte prefix + 4 UTF-16 units
	b.U32(2)

	// Row 0.
	b.I8(-1).U8(200).I16(-300).U16(40000).I32(-70000).U32(3000000000).F32(1.25)
	b.ByteStringFixed("abc", 12)
	b.WideStringFixed("xy", 12)

	// Row 1.
	b.I8(5).U8(6).I16(7).U16(8).I32(9).U32(10).F32(-2.5)
	b.ByteStringFixed("", 12)
	b.WideStringFixed("zzzz", 12)

	return b.Bytes()
}

func TestReadDataSet(t *testing.T) {
	t.Run("AllCellTypes", func(t *testing.T) {
		d := newSectionDecoder(t, allTypesDataSet())

		ds, err := ReadDataSet(d)
		require.NoError(t, err)
		require.Equal(t, "everything", ds.Name.String())
		require.Len(t, ds.NVTs, 1)
		require.Len(t, ds.Columns, 9)
		require.Equal(t, uint32(2), ds.NumRows)

		require.NoError(t, ds.ReadRows(d))

		require.Equal(t, []int8{-1, 5}, ds.Columns[0].(*Int8Column).Values)
		require.Equal(t, []uint8{200, 6}, ds.Columns[1].(*Uint8Column).Values)
		require.Equal(t, []int16{-300, 7}, ds.Columns[2].(*Int16Column).Values)
		require.Equal(t, []uint16{40000, 8}, ds.Columns[3].(*Uint16Column).Values)
		require.Equal(t, []int32{-70000, 9}, ds.Columns[4].(*Int32Column).Values)
		require.Equal(t, []uint32{3000000000, 10}, ds.Columns[5].(*Uint32Column).Values)
		require.Equal(t, []float32{1.25, -2.5}, ds.Columns[6].(*Float32Column).Values)

		bstr := ds.Columns[7].(*ByteStringColumn)
		require.Equal(t, "abc", bstr.Values[0].String())
		require.True(t, bstr.Values[1].IsEmpty())

		wstr := ds.Columns[8].(*WideStringColumn)
		require.Equal(t, "xy", wstr.Values[0].String())
		require.Equal(t, "zzzz", wstr.Values[1].String())

		for _, col := range ds.Columns {
			require.Equal(t, 2, col.Rows())
		}
	})

	t.Run("ColumnLookup", func(t *testing.T) {
		d := newSectionDecoder(t, allTypesDataSet())

		ds, err := ReadDataSet(d)
		require.NoError(t, err)

		col, ok := ds.Column("f32")
		require.True(t, ok)
		require.Equal(t, "f32", col.Schema().Name.String())

		_, ok = ds.Column("missing")
		require.False(t, ok)
	})

	t.Run("InvalidColumnType", func(t *testing.T) {
		b := testenc.NewBuilder()
		b.U32(0).U32(0)
		b.WideString("broken")
		b.I32(0)
		b.U32(1)
		b.ColumnSchema("bogus", 9, 4)
		b.U32(1)

		_, err := ReadDataSet(newSectionDecoder(t, b.Bytes()))
		require.ErrorIs(t, err, errs.ErrInvalidColumnType)
	})

	t.Run("TruncatedRows", func(t *testing.T) {
		data := allTypesDataSet()
		d := newSectionDecoder(t, data[:len(data)-5])

		ds, err := ReadDataSet(d)
		require.NoError(t, err)

		err = ds.ReadRows(d)
		require.ErrorIs(t, err, errs.ErrTruncatedStream)
	})
}

func TestReadDataGroup(t *testing.T) {
	b := testenc.NewBuilder()
	b.U32(4096)
	b.U32(128)
	b.I32(3)
	b.WideString("wavelength-1")

	g, err := ReadDataGroup(newSectionDecoder(t, b.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint32(4096), g.NextGroupOffset)
	require.Equal(t, uint32(128), g.FirstDataSetOffset)
	require.Equal(t, int32(3), g.NumDataSets)
	require.Equal(t, "wavelength-1", g.Name.String())
}
