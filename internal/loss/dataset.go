package loss

import "fmt"

// DatasetType identifies what kind of targets a training run predicts,
// which constrains the losses that apply to it.
type DatasetType string

// Recognized dataset types.
const (
	DatasetRegression     DatasetType = "regression"
	DatasetClassification DatasetType = "classification"
	DatasetMulticlass     DatasetType = "multiclass"
	DatasetSpectra        DatasetType = "spectra"
)

// Validate returns ErrUnsupportedDatasetType for anything outside the
// four recognized values.
func (dt DatasetType) Validate() error {
	switch dt {
	case DatasetRegression, DatasetClassification, DatasetMulticlass, DatasetSpectra:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDatasetType, string(dt))
	}
}

// String returns the configuration spelling of the dataset type.
func (dt DatasetType) String() string { return string(dt) }
