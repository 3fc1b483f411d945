// Package cel reads Affymetrix CEL files stored in the Calvin container
// format, on top of the generic package. A CEL file carries per-cell
// intensities, their standard deviations and pixel counts; multichannel
// files store one data group per channel.
package cel

import (
	"errors"
	"fmt"

	"github.com/arloliu/calvin/generic"
	"github.com/arloliu/calvin/section"
	"github.com/arloliu/calvin/value"
)

// Data type identifiers found in the data header of Calvin CEL files.
const (
	DataTypeIntensity      = "affymetrix-calvin-intensity"
	DataTypeMultiIntensity = "affymetrix-calvin-multi-intensity"
)

// Names of the per-channel data sets carrying cell-level measurements.
const (
	DataSetIntensity = "Intensity"
	DataSetStdDev    = "StdDev"
	DataSetPixel     = "Pixel"
)

// Header metadata names for the chip grid dimensions.
const (
	nvtRows = "affymetrix-cel-rows"
	nvtCols = "affymetrix-cel-cols"
)

// ErrNotCELFile indicates a Calvin container whose data type id is not a
// CEL intensity type.
var ErrNotCELFile = errors.New("not a calvin CEL file")

// IsCEL reports whether f is a Calvin CEL file, single or multichannel.
func IsCEL(f *generic.File) bool {
	id := f.DataHeader().DataTypeID.String()

	return id == DataTypeIntensity || id == DataTypeMultiIntensity
}

// IsMultiChannel reports whether f is a multichannel Calvin CEL file.
func IsMultiChannel(f *generic.File) bool {
	return f.DataHeader().DataTypeID.String() == DataTypeMultiIntensity
}

// Dimensions returns the chip grid size recorded in the header metadata.
func Dimensions(f *generic.File) (rows, cols int32, err error) {
	rows, err = headerInt32(f, nvtRows)
	if err != nil {
		return 0, 0, err
	}
	cols, err = headerInt32(f, nvtCols)
	if err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

func headerInt32(f *generic.File, name string) (int32, error) {
	nvt, ok := f.FindNamedValue(name)
	if !ok {
		return 0, fmt.Errorf("header metadata %q not found", name)
	}

	return value.Int32(nvt.Value)
}

// Channel holds the decoded measurements of one CEL channel. Single-channel
// files yield exactly one Channel; multichannel files yield one per data
// group, in channel (offset chain) order. Data sets a channel does not
// carry leave the matching slice nil.
type Channel struct {
	Name      string
	Intensity []float32
	StdDev    []float32
	NPixels   []int16
}

// ReadChannels decodes every channel of f in one forward pass. f must be
// freshly opened: the traversal starts from the first data group.
func ReadChannels(f *generic.File) ([]Channel, error) {
	if !IsCEL(f) {
		return nil, fmt.Errorf("data type id %q: %w", f.DataHeader().DataTypeID.String(), ErrNotCELFile)
	}

	var channels []Channel
	err := f.EachGroup(func(g *section.DataGroup) error {
		ch := Channel{Name: g.Name.String()}

		err := f.DataSets(g, func(ds *section.DataSet) error {
			switch ds.Name.String() {
			case DataSetIntensity:
				return extractFloat32(ds, &ch.Intensity)
			case DataSetStdDev:
				return extractFloat32(ds, &ch.StdDev)
			case DataSetPixel:
				return extractInt16(ds, &ch.NPixels)
			default:
				// Outlier/mask coordinate sets and anything newer pass
				// through undecoded.
				return nil
			}
		})
		if err != nil {
			return err
		}

		channels = append(channels, ch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return channels, nil
}

// ReadIntensities decodes only the intensity values of every channel,
// skipping the remaining data sets of each group.
func ReadIntensities(f *generic.File) ([]Channel, error) {
	if !IsCEL(f) {
		return nil, fmt.Errorf("data type id %q: %w", f.DataHeader().DataTypeID.String(), ErrNotCELFile)
	}

	var channels []Channel
	err := f.EachGroup(func(g *section.DataGroup) error {
		ch := Channel{Name: g.Name.String()}

		err := f.DataSets(g, func(ds *section.DataSet) error {
			if ds.Name.String() == DataSetIntensity {
				return extractFloat32(ds, &ch.Intensity)
			}

			return nil
		})
		if err != nil {
			return err
		}

		channels = append(channels, ch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return channels, nil
}

// extractFloat32 takes ownership of the first column's float32 storage.
func extractFloat32(ds *section.DataSet, dst *[]float32) error {
	if len(ds.Columns) == 0 {
		return fmt.Errorf("data set %q has no columns", ds.Name.String())
	}

	col, ok := ds.Columns[0].(*section.Float32Column)
	if !ok {
		return fmt.Errorf("data set %q column 0 is %s, want Float32",
			ds.Name.String(), ds.Columns[0].Schema().Type)
	}
	*dst = col.Values

	return nil
}

// extractInt16 takes ownership of the first column's int16 storage.
func extractInt16(ds *section.DataSet, dst *[]int16) error {
	if len(ds.Columns) == 0 {
		return fmt.Errorf("data set %q has no columns", ds.Name.String())
	}

	col, ok := ds.Columns[0].(*section.Int16Column)
	if !ok {
		return fmt.Errorf("data set %q column 0 is %s, want Int16",
			ds.Name.String(), ds.Columns[0].Schema().Type)
	}
	*dst = col.Values

	return nil
}
