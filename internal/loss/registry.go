package loss

import (
	"fmt"
	"sort"
	"strings"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Constructor builds a loss on a backend.
type Constructor[B tensor.Backend] func(backend B) Loss[B]

// Registry maps (dataset type, loss name) pairs to loss constructors.
// The standard registry is immutable process-wide configuration; custom
// registries can be assembled with Register and SetDefault.
type Registry[B tensor.Backend] struct {
	entries  map[DatasetType]map[string]Constructor[B]
	defaults map[DatasetType]string
}

// NewRegistry creates an empty registry.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	return &Registry[B]{
		entries:  make(map[DatasetType]map[string]Constructor[B]),
		defaults: make(map[DatasetType]string),
	}
}

// DefaultRegistry builds the standard loss table. Name strings from both
// historical naming schemes are preserved so existing run configurations
// keep resolving: "cross_entropy" aliases binary cross-entropy for
// classification and "spectra" aliases SID.
func DefaultRegistry[B tensor.Backend]() *Registry[B] {
	r := NewRegistry[B]()

	r.Register(DatasetRegression, "mse", func(b B) Loss[B] { return NewMSELoss(b) })
	r.Register(DatasetRegression, "bounded_mse", func(b B) Loss[B] { return NewBoundedMSELoss(b) })
	r.SetDefault(DatasetRegression, "mse")

	r.Register(DatasetClassification, "binary_cross_entropy", func(b B) Loss[B] { return NewBCELoss(b) })
	r.Register(DatasetClassification, "cross_entropy", func(b B) Loss[B] { return NewBCELoss(b) })
	r.Register(DatasetClassification, "mcc", func(b B) Loss[B] { return NewMCCLoss(b) })
	r.SetDefault(DatasetClassification, "binary_cross_entropy")

	r.Register(DatasetMulticlass, "cross_entropy", func(b B) Loss[B] { return NewCrossEntropyLoss(b) })
	r.Register(DatasetMulticlass, "mcc", func(b B) Loss[B] { return NewMCCMulticlassLoss(b) })
	r.SetDefault(DatasetMulticlass, "cross_entropy")

	r.Register(DatasetSpectra, "sid", func(b B) Loss[B] { return NewSIDLoss(b) })
	r.Register(DatasetSpectra, "spectra", func(b B) Loss[B] { return NewSIDLoss(b) })
	r.Register(DatasetSpectra, "wasserstein", func(b B) Loss[B] { return NewWassersteinLoss(b) })
	r.SetDefault(DatasetSpectra, "sid")

	return r
}

// Register adds a named loss constructor for a dataset type.
func (r *Registry[B]) Register(dataset DatasetType, name string, ctor Constructor[B]) {
	if r.entries[dataset] == nil {
		r.entries[dataset] = make(map[string]Constructor[B])
	}
	r.entries[dataset][name] = ctor
}

// SetDefault marks the loss resolved when no name is configured.
func (r *Registry[B]) SetDefault(dataset DatasetType, name string) {
	r.defaults[dataset] = name
}

// Names returns the loss names registered for a dataset type, sorted.
func (r *Registry[B]) Names(dataset DatasetType) []string {
	names := make([]string, 0, len(r.entries[dataset]))
	for name := range r.entries[dataset] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up the (dataset, name) pair and constructs the loss on
// the given backend. An empty name resolves the dataset's default.
func (r *Registry[B]) Resolve(dataset DatasetType, name string, backend B) (Loss[B], error) {
	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	if _, ok := r.entries[dataset]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatasetType, string(dataset))
	}

	if name == "" {
		def, ok := r.defaults[dataset]
		if !ok {
			return nil, fmt.Errorf("%w for dataset type %q", ErrNoDefaultLoss, string(dataset))
		}
		name = def
	}

	ctor, ok := r.entries[dataset][name]
	if !ok {
		return nil, fmt.Errorf("%w: %q for dataset type %q (valid options: %s)",
			ErrUnsupportedLoss, name, string(dataset), strings.Join(r.Names(dataset), ", "))
	}

	return ctor(backend), nil
}

// Select resolves a (dataset type, loss name) pair against the standard
// registry. This is the one call the training loop makes at setup; the
// returned Loss is then invoked once per batch.
func Select[B tensor.Backend](dataset DatasetType, name string, backend B) (Loss[B], error) {
	return DefaultRegistry[B]().Resolve(dataset, name, backend)
}
