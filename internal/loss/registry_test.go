package loss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molnet-ml/molnet/internal/backend/cpu"
	"github.com/molnet-ml/molnet/internal/tensor"
)

func TestSelectResolvesEveryRegisteredPair(t *testing.T) {
	be := cpu.New()

	tests := []struct {
		dataset  DatasetType
		name     string
		wantName string
	}{
		{DatasetRegression, "mse", "mse"},
		{DatasetRegression, "bounded_mse", "bounded_mse"},
		{DatasetClassification, "binary_cross_entropy", "binary_cross_entropy"},
		{DatasetClassification, "cross_entropy", "binary_cross_entropy"},
		{DatasetClassification, "mcc", "mcc"},
		{DatasetMulticlass, "cross_entropy", "cross_entropy"},
		{DatasetMulticlass, "mcc", "mcc"},
		{DatasetSpectra, "sid", "sid"},
		{DatasetSpectra, "spectra", "sid"},
		{DatasetSpectra, "wasserstein", "wasserstein"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dataset)+"/"+tt.name, func(t *testing.T) {
			l, err := Select(tt.dataset, tt.name, be)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, l.Name())
		})
	}
}

func TestSelectDefaults(t *testing.T) {
	be := cpu.New()

	tests := []struct {
		dataset  DatasetType
		wantName string
	}{
		{DatasetRegression, "mse"},
		{DatasetClassification, "binary_cross_entropy"},
		{DatasetMulticlass, "cross_entropy"},
		{DatasetSpectra, "sid"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dataset), func(t *testing.T) {
			l, err := Select(tt.dataset, "", be)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, l.Name())
		})
	}
}

func TestSelectUnsupportedDatasetType(t *testing.T) {
	be := cpu.New()

	_, err := Select(DatasetType("graphs"), "mse", be)
	assert.ErrorIs(t, err, ErrUnsupportedDatasetType)
	assert.Contains(t, err.Error(), "graphs")
}

func TestSelectUnsupportedLossListsValidNames(t *testing.T) {
	be := cpu.New()

	_, err := Select(DatasetSpectra, "mse", be)
	assert.ErrorIs(t, err, ErrUnsupportedLoss)
	assert.Contains(t, err.Error(), "sid")
	assert.Contains(t, err.Error(), "spectra")
	assert.Contains(t, err.Error(), "wasserstein")
}

func TestSelectF1IsNotRegistered(t *testing.T) {
	be := cpu.New()

	_, err := Select(DatasetClassification, "f1", be)
	assert.ErrorIs(t, err, ErrUnsupportedLoss)

	_, err = Select(DatasetMulticlass, "f1", be)
	assert.ErrorIs(t, err, ErrUnsupportedLoss)
}

func TestRegistryWithoutDefault(t *testing.T) {
	be := cpu.New()

	r := NewRegistry[*cpu.CPUBackend]()
	r.Register(DatasetRegression, "mse", func(b *cpu.CPUBackend) Loss[*cpu.CPUBackend] { return NewMSELoss(b) })

	_, err := r.Resolve(DatasetRegression, "", be)
	assert.ErrorIs(t, err, ErrNoDefaultLoss)

	l, err := r.Resolve(DatasetRegression, "mse", be)
	require.NoError(t, err)
	assert.Equal(t, "mse", l.Name())
}

func TestRegistryResolveUnknownDatasetInCustomRegistry(t *testing.T) {
	be := cpu.New()

	r := NewRegistry[*cpu.CPUBackend]()
	_, err := r.Resolve(DatasetSpectra, "sid", be)
	assert.ErrorIs(t, err, ErrUnsupportedDatasetType)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := DefaultRegistry[*cpu.CPUBackend]()
	assert.Equal(t, []string{"binary_cross_entropy", "cross_entropy", "mcc"}, r.Names(DatasetClassification))
	assert.Equal(t, []string{"sid", "spectra", "wasserstein"}, r.Names(DatasetSpectra))
}

func TestDatasetTypeValidate(t *testing.T) {
	assert.NoError(t, DatasetRegression.Validate())
	assert.NoError(t, DatasetClassification.Validate())
	assert.NoError(t, DatasetMulticlass.Validate())
	assert.NoError(t, DatasetSpectra.Validate())
	assert.ErrorIs(t, DatasetType("images").Validate(), ErrUnsupportedDatasetType)
}

func TestSelectedLossComputesEndToEnd(t *testing.T) {
	be := cpu.New()

	l, err := Select(DatasetRegression, "", be)
	require.NoError(t, err)

	batch := &Batch[*cpu.CPUBackend]{
		Predictions: f32(t, be, tensor.Shape{1, 2}, []float32{0.5, 2}),
		Targets:     f32(t, be, tensor.Shape{1, 2}, []float32{1, 1}),
	}
	got := l.Compute(batch)
	assert.InDelta(t, 0.25, got.Data()[0], 1e-6)
	assert.InDelta(t, 1.0, got.Data()[1], 1e-6)
}
