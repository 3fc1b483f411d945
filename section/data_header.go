package section

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/calvin/encoding"
)

// DataHeader is the self-describing metadata header of a Calvin file. The
// file's own header is the root of a tree: each header owns the headers of
// the files it was derived from (its provenance), parsed depth-first in
// stored order.
//
// The triplet and parent orders are significant; by-name lookups resolve to
// the first match in stored order, locally before any parent.
type DataHeader struct {
	DataTypeID   encoding.ByteString
	UniqueFileID encoding.ByteString
	DateTime     encoding.WideString
	Locale       encoding.WideString
	NVTs         []NVT
	Parents      []*DataHeader

	// nameIndex accelerates repeated FindNamedValue calls over large
	// provenance trees. Built lazily; keyed by xxhash of the UTF-8 name with
	// first-match-wins insertion, so it returns exactly what the ordered
	// walk would.
	nameIndex map[uint64]*NVT
}

// ReadDataHeader reads a data header and, recursively, its whole provenance
// tree: four string fields, a triplet count with that many triplets, then a
// parent count with that many depth-first parsed parent headers.
func ReadDataHeader(d *encoding.Decoder) (*DataHeader, error) {
	h := &DataHeader{}
	var err error

	if h.DataTypeID, err = d.ByteString(); err != nil {
		return nil, err
	}
	if h.UniqueFileID, err = d.ByteString(); err != nil {
		return nil, err
	}
	if h.DateTime, err = d.WideString(); err != nil {
		return nil, err
	}
	if h.Locale, err = d.WideString(); err != nil {
		return nil, err
	}

	numNVT, err := d.Int32()
	if err != nil {
		return nil, err
	}
	if numNVT > 0 {
		h.NVTs = make([]NVT, 0, numNVT)
		for i := int32(0); i < numNVT; i++ {
			nvt, err := ReadNVT(d)
			if err != nil {
				return nil, err
			}
			h.NVTs = append(h.NVTs, nvt)
		}
	}

	numParents, err := d.Int32()
	if err != nil {
		return nil, err
	}
	if numParents > 0 {
		h.Parents = make([]*DataHeader, 0, numParents)
		for i := int32(0); i < numParents; i++ {
			parent, err := ReadDataHeader(d)
			if err != nil {
				return nil, err
			}
			h.Parents = append(h.Parents, parent)
		}
	}

	return h, nil
}

// FindNamedValue looks up a metadata triplet by name: the header's own
// triplets are searched first in stored order, then each parent header
// recursively in stored order, and the first match anywhere in the tree
// wins. Absence is reported with ok=false, never as an error.
func (h *DataHeader) FindNamedValue(name string) (*NVT, bool) {
	h.buildNameIndex()

	nvt, ok := h.nameIndex[xxhash.Sum64String(name)]
	if !ok {
		// Every name in the tree has its hash in the index, so a miss is
		// authoritative.
		return nil, false
	}
	if nvt.Name.Equal(name) {
		return nvt, true
	}

	// Hash collision with a different name: fall back to the ordered walk.
	return h.findNamedValueSlow(name)
}

func (h *DataHeader) findNamedValueSlow(name string) (*NVT, bool) {
	for i := range h.NVTs {
		if h.NVTs[i].Name.Equal(name) {
			return &h.NVTs[i], true
		}
	}

	for _, parent := range h.Parents {
		if nvt, ok := parent.findNamedValueSlow(name); ok {
			return nvt, true
		}
	}

	return nil, false
}

// buildNameIndex populates the lazy hash index over the whole tree. Entries
// are inserted in the exact order FindNamedValue searches, keeping only the
// first triplet per hash, which preserves first-match-wins semantics.
func (h *DataHeader) buildNameIndex() {
	if h.nameIndex != nil {
		return
	}

	h.nameIndex = make(map[uint64]*NVT)
	h.indexInto(h.nameIndex)
}

func (h *DataHeader) indexInto(index map[uint64]*NVT) {
	for i := range h.NVTs {
		key := xxhash.Sum64String(h.NVTs[i].Name.String())
		if _, exists := index[key]; !exists {
			index[key] = &h.NVTs[i]
		}
	}

	for _, parent := range h.Parents {
		parent.indexInto(index)
	}
}
