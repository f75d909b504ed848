package loss

import "errors"

// Selector errors. All are configuration errors surfaced once at setup;
// nothing inside a loss computation returns an error at run time.
var (
	// ErrUnsupportedDatasetType means the dataset type is not one of the
	// four recognized values.
	ErrUnsupportedDatasetType = errors.New("unsupported dataset type")

	// ErrUnsupportedLoss means the named loss is not registered for the
	// dataset type. The wrapped message lists the valid names.
	ErrUnsupportedLoss = errors.New("unsupported loss function")

	// ErrNoDefaultLoss means no loss name was given and the registry has
	// no default for the dataset type.
	ErrNoDefaultLoss = errors.New("no default loss function configured")
)
