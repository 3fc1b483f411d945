package section

import (
	"fmt"

	"github.com/arloliu/calvin/encoding"
	"github.com/arloliu/calvin/errs"
	"github.com/arloliu/calvin/format"
)

// FileHeader is the fixed 10-byte header at the start of every Calvin file.
// It is immutable once parsed.
type FileHeader struct {
	MagicNumber      uint8
	Version          uint8
	NumDataGroups    int32
	FirstGroupOffset uint32
}

// ReadFileHeader reads and validates the file header. The magic byte is
// checked before anything else is read, and a wrong magic or version aborts
// the parse immediately with errs.ErrInvalidMagicNumber or
// errs.ErrInvalidVersion.
func ReadFileHeader(d *encoding.Decoder) (FileHeader, error) {
	var h FileHeader

	magic, err := d.Uint8()
	if err != nil {
		return FileHeader{}, err
	}
	if magic != format.MagicNumber {
		return FileHeader{}, fmt.Errorf("magic byte %d: %w", magic, errs.ErrInvalidMagicNumber)
	}
	h.MagicNumber = magic

	version, err := d.Uint8()
	if err != nil {
		return FileHeader{}, err
	}
	if version != format.Version {
		return FileHeader{}, fmt.Errorf("version %d: %w", version, errs.ErrInvalidVersion)
	}
	h.Version = version

	if h.NumDataGroups, err = d.Int32(); err != nil {
		return FileHeader{}, err
	}
	if h.FirstGroupOffset, err = d.Uint32(); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}
