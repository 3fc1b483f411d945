package generic

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/calvin/encoding"
	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/format"
	"github.com/arloliu/calvin/internal/options"
	"github.com/arloliu/calvin/section"
	"github.com/arloliu/calvin/stream"
)

// File is an open Calvin container. Creating one parses the file header and
// the full data header tree; data groups and data sets are read lazily
// through the traversal methods.
//
// A File is not safe for concurrent use: decoding is strictly sequential
// over a single stream.
type File struct {
	dec        *encoding.Decoder
	header     section.FileHeader
	dataHeader *section.DataHeader

	warn        func(msg string)
	closer      io.Closer
	compression *format.CompressionType

	groupsRead      int32
	nextGroupOffset uint32
	closed          bool
}

// Option configures Open and OpenPath.
type Option = options.Option[*File]

// WithWarnFunc installs a sink for non-fatal diagnostics (there is no
// logging inside the library; this is the only reporting channel).
func WithWarnFunc(fn func(msg string)) Option {
	return options.NoError(func(f *File) {
		f.warn = fn
	})
}

// WithCompression forces the transport compression instead of sniffing it
// from the leading magic bytes. Only OpenReader and OpenPath consult it;
// Open receives an already constructed backend.
func WithCompression(c format.CompressionType) Option {
	return options.NoError(func(f *File) {
		f.compression = &c
	})
}

// Open parses the header portion of a Calvin container from an already
// constructed stream backend.
func Open(r stream.Reader, opts ...Option) (*File, error) {
	f := &File{}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}
	if err := f.parse(r); err != nil {
		return nil, err
	}

	return f, nil
}

// OpenReader parses a Calvin container from r. Transport compression is
// sniffed from its leading bytes unless WithCompression overrides it.
func OpenReader(r io.ReadSeeker, opts ...Option) (*File, error) {
	f := &File{}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	var sr stream.Reader
	var err error
	if f.compression != nil {
		sr, err = stream.NewWith(r, *f.compression)
	} else {
		sr, err = stream.New(r)
	}
	if err != nil {
		return nil, err
	}

	if err := f.parse(sr); err != nil {
		return nil, err
	}

	return f, nil
}

// parse reads the file header and the full data header tree from sr.
func (f *File) parse(sr stream.Reader) error {
	f.dec = encoding.NewDecoder(sr)

	header, err := section.ReadFileHeader(f.dec)
	if err != nil {
		return fmt.Errorf("read file header: %w", err)
	}
	f.header = header
	f.nextGroupOffset = header.FirstGroupOffset

	dataHeader, err := section.ReadDataHeader(f.dec)
	if err != nil {
		return fmt.Errorf("read data header: %w", err)
	}
	f.dataHeader = dataHeader

	return nil
}

// OpenPath opens and parses the Calvin container at path. Compressed files
// are detected by their container magic and decompressed transparently.
// The caller owns the returned File and must Close it.
func OpenPath(path string, opts ...Option) (*File, error) {
	osf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	f, err := OpenReader(osf, opts...)
	if err != nil {
		osf.Close()
		return nil, err
	}
	f.closer = osf

	return f, nil
}

// Close releases the underlying file handle, if the File owns one.
func (f *File) Close() error {
	if f.closed {
		return errs.ErrClosed
	}
	f.closed = true

	if f.closer != nil {
		return f.closer.Close()
	}

	return nil
}

// Header returns the parsed file header.
func (f *File) Header() section.FileHeader {
	return f.header
}

// DataHeader returns the root of the data header tree. It stays valid for
// the lifetime of the File.
func (f *File) DataHeader() *section.DataHeader {
	return f.dataHeader
}

// FindNamedValue looks up a metadata triplet by name across the whole data
// header tree (local triplets first, then parents in stored order).
func (f *File) FindNamedValue(name string) (*section.NVT, bool) {
	return f.dataHeader.FindNamedValue(name)
}

// NumGroups returns the declared data group count.
func (f *File) NumGroups() int {
	return int(f.header.NumDataGroups)
}

// NextGroup seeks to the next group in the stored offset chain and reads
// its record. It returns nil once the declared group count is exhausted or
// the chain ends with an absent (zero) next-group offset, whichever comes
// first.
//
// The caller must consume the group's data sets with DataSets (or skip
// them via SkipDataSets) before calling NextGroup again; traversal reads
// each group's data sets before following its next-group offset.
func (f *File) NextGroup() (*section.DataGroup, error) {
	if f.closed {
		return nil, errs.ErrClosed
	}
	if f.groupsRead >= f.header.NumDataGroups {
		return nil, nil
	}
	if f.groupsRead > 0 && f.nextGroupOffset == 0 {
		f.warnf("data group chain ended after %d of %d groups", f.groupsRead, f.header.NumDataGroups)
		return nil, nil
	}

	if err := f.dec.SeekTo(int64(f.nextGroupOffset)); err != nil {
		return nil, fmt.Errorf("seek to data group %d: %w", f.groupsRead, err)
	}

	g, err := section.ReadDataGroup(f.dec)
	if err != nil {
		return nil, fmt.Errorf("read data group %d: %w", f.groupsRead, err)
	}

	f.groupsRead++
	f.nextGroupOffset = g.NextGroupOffset

	return g, nil
}

// DataSets reads each of g's data sets in turn, schema and rows, and hands
// it to fn. After fn returns, the stream is repositioned to the data set's
// stored trailing offset — the authoritative end position regardless of how
// many bytes the row decode consumed — and the data set is released. A
// non-nil error from fn aborts the iteration.
func (f *File) DataSets(g *section.DataGroup, fn func(*section.DataSet) error) error {
	if g.NumDataSets > 0 {
		if err := f.dec.SeekTo(int64(g.FirstDataSetOffset)); err != nil {
			return fmt.Errorf("seek to first data set of group %q: %w", g.Name.String(), err)
		}
	}

	for i := int32(0); i < g.NumDataSets; i++ {
		ds, err := section.ReadDataSet(f.dec)
		if err != nil {
			return fmt.Errorf("read data set %d of group %q: %w", i, g.Name.String(), err)
		}
		if err := ds.ReadRows(f.dec); err != nil {
			return fmt.Errorf("read rows of data set %q: %w", ds.Name.String(), err)
		}

		if err := fn(ds); err != nil {
			return err
		}

		if off := f.dec.Offset(); off != int64(ds.PosLast) {
			// Declared size and consumed bytes may legitimately disagree;
			// the stored trailing offset wins.
			f.warnf("data set %q rows ended at offset %d, declared end %d", ds.Name.String(), off, ds.PosLast)
		}
		if err := f.dec.SeekTo(int64(ds.PosLast)); err != nil {
			return fmt.Errorf("seek past data set %q: %w", ds.Name.String(), err)
		}
	}

	return nil
}

// SkipDataSets advances past g's data sets without decoding their rows,
// using each data set's stored trailing offset.
func (f *File) SkipDataSets(g *section.DataGroup) error {
	if g.NumDataSets > 0 {
		if err := f.dec.SeekTo(int64(g.FirstDataSetOffset)); err != nil {
			return fmt.Errorf("seek to first data set of group %q: %w", g.Name.String(), err)
		}
	}

	for i := int32(0); i < g.NumDataSets; i++ {
		ds, err := section.ReadDataSet(f.dec)
		if err != nil {
			return fmt.Errorf("read data set %d of group %q: %w", i, g.Name.String(), err)
		}
		if err := f.dec.SeekTo(int64(ds.PosLast)); err != nil {
			return fmt.Errorf("seek past data set %q: %w", ds.Name.String(), err)
		}
	}

	return nil
}

// EachGroup walks every data group in chain order and hands each one to fn
// together with the File for data set access. fn must consume or skip the
// group's data sets before returning.
func (f *File) EachGroup(fn func(*section.DataGroup) error) error {
	for {
		g, err := f.NextGroup()
		if err != nil {
			return err
		}
		if g == nil {
			return nil
		}
		if err := fn(g); err != nil {
			return err
		}
	}
}

// warnf reports a non-fatal diagnostic to the configured sink, if any.
func (f *File) warnf(msg string, args ...any) {
	if f.warn != nil {
		f.warn(fmt.Sprintf(msg, args...))
	}
}
