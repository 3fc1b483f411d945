package section

import (
	"github.com/arloliu/calvin/encoding"
)

// DataGroup is a named collection of data sets. Groups form a singly-linked
// chain through NextGroupOffset; that stored offset, not physical file
// order, defines the logical iteration order. A zero NextGroupOffset marks
// the end of the chain.
//
// Groups are transient: traversal releases them once their data sets have
// been consumed.
type DataGroup struct {
	NextGroupOffset    uint32
	FirstDataSetOffset uint32
	NumDataSets        int32
	Name               encoding.WideString
}

// ReadDataGroup reads one data group record at the current position.
func ReadDataGroup(d *encoding.Decoder) (*DataGroup, error) {
	g := &DataGroup{}
	var err error

	if g.NextGroupOffset, err = d.Uint32(); err != nil {
		return nil, err
	}
	if g.FirstDataSetOffset, err = d.Uint32(); err != nil {
		return nil, err
	}
	if g.NumDataSets, err = d.Int32(); err != nil {
		return nil, err
	}
	if g.Name, err = d.WideString(); err != nil {
		return nil, err
	}

	return g, nil
}
