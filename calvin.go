// Package calvin decodes the Calvin (Command Console Generic Data) binary
// container format used by scientific instrument data files.
//
// A Calvin file is a self-describing tree: a small fixed file header, a
// recursive metadata header recording the file's full provenance, and a
// chain of named data groups each holding typed, schema-described data set
// tables. All multi-byte values are big-endian on disk.
//
// # Core Features
//
//   - Full data header (provenance) tree parsing with by-name metadata lookup
//   - Offset-chained data group traversal tolerant of physical reordering
//   - Typed column tables decoded into column-major native arrays
//   - MIME-tagged metadata values with typed and uniform-text decode modes
//   - Transparent decompression of gzip/zstd/lz4/xz compressed files
//   - Bounded memory: one data set materialized at a time
//
// # Basic Usage
//
// Opening a file and walking its tables:
//
//	f, err := calvin.OpenPath("sample.calvin")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	err = f.EachGroup(func(g *section.DataGroup) error {
//	    return f.DataSets(g, func(ds *section.DataSet) error {
//	        fmt.Printf("group %s, set %s: %d rows\n",
//	            g.Name.String(), ds.Name.String(), ds.NumRows)
//	        return nil
//	    })
//	})
//
// Looking up and decoding header metadata:
//
//	if nvt, ok := f.FindNamedValue("affymetrix-cel-rows"); ok {
//	    rows, _ := value.Int32(nvt.Value)
//	    fmt.Println("rows:", rows)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the generic
// package. For fine-grained control, use the generic, section, value and
// stream packages directly; the cel package layers Affymetrix CEL file
// semantics on top.
package calvin

import (
	"io"

	"github.com/arloliu/calvin/format"
	"github.com/arloliu/calvin/generic"
	"github.com/arloliu/calvin/stream"
)

// Option configures file opening. It aliases generic.Option.
type Option = generic.Option

// WithWarnFunc installs a sink for non-fatal decode diagnostics.
func WithWarnFunc(fn func(msg string)) Option {
	return generic.WithWarnFunc(fn)
}

// WithCompression forces the transport compression instead of sniffing it.
func WithCompression(c format.CompressionType) Option {
	return generic.WithCompression(c)
}

// OpenPath opens and parses the header portion of the Calvin file at path.
// Compressed files are detected by their leading magic bytes and
// decompressed transparently.
func OpenPath(path string, opts ...Option) (*generic.File, error) {
	return generic.OpenPath(path, opts...)
}

// OpenReader parses a Calvin container from r, sniffing transport
// compression from its leading bytes.
func OpenReader(r io.ReadSeeker, opts ...Option) (*generic.File, error) {
	return generic.OpenReader(r, opts...)
}

// Open parses a Calvin container from an already constructed stream
// backend.
func Open(r stream.Reader, opts ...Option) (*generic.File, error) {
	return generic.Open(r, opts...)
}
