package testenc

// MultiChannelCEL assembles a small but complete multichannel Calvin CEL
// fixture with two channels:
//
//	header: data type "affymetrix-calvin-multi-intensity",
//	        affymetrix-cel-rows = 1, affymetrix-cel-cols = 3
//	group "wavelength-1": Intensity [1.5 2.5 3.5] (float32)
//	                      StdDev            [0.1 0.2 0.3] (float32)
//	                      Pixel             [9 9 8]       (int16)
//	group "wavelength-2": Intensity [4.5 5.5 6.5] (float32)
//
// All stored offsets (first group, next group, data set pos_first/pos_last)
// are patched to their real values, so the fixture exercises the same
// offset-driven traversal as a real file.
func MultiChannelCEL() []byte {
	b := NewBuilder()

	b.FileHeader(59, 1, 2, 0)
	const firstGroupSlot = 6

	b.DataHeaderStart("affymetrix-calvin-multi-intensity", "uid-0001", "2010-05-25T10:00:00Z", "en-US", 2)
	b.U32NVT("affymetrix-cel-rows", 1, "text/x-calvin-integer-32")
	b.U32NVT("affymetrix-cel-cols", 3, "text/x-calvin-integer-32")
	b.I32(0) // no parent headers

	// Channel 1.
	b.PatchU32(firstGroupSlot, uint32(b.Len()))
	g1Next := b.U32Slot()
	g1First := b.U32Slot()
	b.I32(3)
	b.WideString("wavelength-1")
	b.PatchU32(g1First, uint32(b.Len()))

	b.float32DataSet("Intensity", []float32{1.5, 2.5, 3.5})
	b.float32DataSet("StdDev", []float32{0.1, 0.2, 0.3})
	b.int16DataSet("Pixel", []int16{9, 9, 8})

	// Channel 2.
	b.PatchU32(g1Next, uint32(b.Len()))
	b.U32(0) // end of group chain
	g2First := b.U32Slot()
	b.I32(1)
	b.WideString("wavelength-2")
	b.PatchU32(g2First, uint32(b.Len()))

	b.float32DataSet("Intensity", []float32{4.5, 5.5, 6.5})

	return b.Bytes()
}

// float32DataSet appends a single-column float32 data set with patched
// pos_first/pos_last offsets.
func (b *Builder) float32DataSet(name string, values []float32) {
	posFirst := b.U32Slot()
	posLast := b.U32Slot()
	b.WideString(name)
	b.I32(0) // no triplets
	b.U32(1) // one column
	b.ColumnSchema(name, 6, 4)
	b.U32(uint32(len(values)))

	b.PatchU32(posFirst, uint32(b.Len()))
	for _, v := range values {
		b.F32(v)
	}
	b.PatchU32(posLast, uint32(b.Len()))
}

// int16DataSet appends a single-column int16 data set with patched
// pos_first/pos_last offsets.
func (b *Builder) int16DataSet(name string, values []int16) {
	posFirst := b.U32Slot()
	posLast := b.U32Slot()
	b.WideString(name)
	b.I32(0)
	b.U32(1)
	b.ColumnSchema(name, 2, 2)
	b.U32(uint32(len(values)))

	b.PatchU32(posFirst, uint32(b.Len()))
	for _, v := range values {
		b.I16(v)
	}
	b.PatchU32(posLast, uint32(b.Len()))
}
