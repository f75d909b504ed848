package loss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/molnet-ml/molnet/internal/backend/cpu"
	"github.com/molnet-ml/molnet/internal/tensor"
)

func fullMask(t *testing.T, be *cpu.CPUBackend, shape tensor.Shape) *tensor.Tensor[bool, *cpu.CPUBackend] {
	t.Helper()
	data := make([]bool, shape.NumElements())
	for i := range data {
		data[i] = true
	}
	return boolean(t, be, shape, data)
}

func TestSIDLossIdenticalSpectraIsZero(t *testing.T) {
	be := cpu.New()
	l := NewSIDLoss(be)

	spectra := f32(t, be, tensor.Shape{2, 3}, []float32{
		0.5, 0.3, 0.2,
		0.1, 0.1, 0.8,
	})
	mask := fullMask(t, be, tensor.Shape{2, 3})

	got := l.Forward(spectra, spectra, mask)
	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	for i, v := range got.Data() {
		assert.InDelta(t, 0, v, 1e-6, "element %d", i)
	}
}

func TestWassersteinLossIdenticalSpectraIsZero(t *testing.T) {
	be := cpu.New()
	l := NewWassersteinLoss(be)

	spectra := f32(t, be, tensor.Shape{1, 4}, []float32{0.25, 0.25, 0.25, 0.25})
	mask := fullMask(t, be, tensor.Shape{1, 4})

	got := l.Forward(spectra, spectra, mask)
	for i, v := range got.Data() {
		assert.InDelta(t, 0, v, 1e-6, "element %d", i)
	}
}

func TestWassersteinLossCumulativeDistance(t *testing.T) {
	be := cpu.New()
	l := NewWassersteinLoss(be)

	// All mass at the first bin vs all mass at the last: the cumulative
	// curves differ by 1 everywhere except the final bin.
	model := f32(t, be, tensor.Shape{1, 3}, []float32{1, 0, 0})
	target := f32(t, be, tensor.Shape{1, 3}, []float32{0, 0, 1})
	mask := fullMask(t, be, tensor.Shape{1, 3})

	got := l.Forward(model, target, mask)
	assert.InDelta(t, 1, got.Data()[0], 1e-6)
	assert.InDelta(t, 1, got.Data()[1], 1e-6)
	assert.InDelta(t, 0, got.Data()[2], 1e-6)
}

func TestSpectralLossesAreScaleInvariant(t *testing.T) {
	be := cpu.New()

	model := f32(t, be, tensor.Shape{1, 3}, []float32{0.2, 0.5, 0.3})
	scaled := f32(t, be, tensor.Shape{1, 3}, []float32{1.0, 2.5, 1.5})
	target := f32(t, be, tensor.Shape{1, 3}, []float32{0.3, 0.3, 0.4})
	mask := fullMask(t, be, tensor.Shape{1, 3})

	sid := NewSIDLoss(be)
	base := sid.Forward(model, target, mask).Data()
	got := sid.Forward(scaled, target, mask).Data()
	for i := range base {
		assert.InDelta(t, base[i], got[i], 1e-5, "sid element %d", i)
	}

	wasserstein := NewWassersteinLoss(be)
	base = wasserstein.Forward(model, target, mask).Data()
	got = wasserstein.Forward(scaled, target, mask).Data()
	for i := range base {
		assert.InDelta(t, base[i], got[i], 1e-5, "wasserstein element %d", i)
	}
}

func TestSIDLossAllMaskedRowIsFiniteZero(t *testing.T) {
	be := cpu.New()
	l := NewSIDLoss(be)

	model := f32(t, be, tensor.Shape{2, 3}, []float32{
		0.4, 0.4, 0.2,
		0.4, 0.4, 0.2,
	})
	target := f32(t, be, tensor.Shape{2, 3}, []float32{
		0.4, 0.4, 0.2,
		0.2, 0.4, 0.4,
	})
	mask := boolean(t, be, tensor.Shape{2, 3}, []bool{
		true, true, true,
		false, false, false,
	})

	got := l.Forward(model, target, mask).Data()
	// Row 0 is a perfect match, row 1 is fully excluded: the division by
	// its zero row sum must not leak NaN into the patched cells.
	for i, v := range got {
		assert.False(t, math.IsNaN(float64(v)), "element %d", i)
		assert.InDelta(t, 0, v, 1e-6, "element %d", i)
	}
}

func TestSIDLossMaskedCellsContributeNothing(t *testing.T) {
	be := cpu.New()
	l := NewSIDLoss(be)

	// The masked third bin disagrees wildly but its loss cell is zero,
	// and the model row renormalizes over the two valid bins.
	model := f32(t, be, tensor.Shape{1, 3}, []float32{0.3, 0.3, 99})
	target := f32(t, be, tensor.Shape{1, 3}, []float32{0.5, 0.5, 0.001})
	mask := boolean(t, be, tensor.Shape{1, 3}, []bool{true, true, false})

	got := l.Forward(model, target, mask).Data()
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, 0, got[1], 1e-6)
	assert.InDelta(t, 0, got[2], 1e-6)
}

func TestSIDLossThresholdClampsZeros(t *testing.T) {
	be := cpu.New()
	l := NewSIDLoss(be, WithThreshold(0.5))

	// The zero bin clamps up to 0.5, so the normalized model row is
	// (1/3, 2/3), matching the target exactly.
	model := f32(t, be, tensor.Shape{1, 2}, []float32{0, 1})
	target := f32(t, be, tensor.Shape{1, 2}, []float32{1.0 / 3, 2.0 / 3})
	mask := fullMask(t, be, tensor.Shape{1, 2})

	got := l.Forward(model, target, mask).Data()
	assert.InDelta(t, 0, got[0], 1e-5)
	assert.InDelta(t, 0, got[1], 1e-5)
}

func TestSIDLossWithoutThresholdPropagatesNonFinite(t *testing.T) {
	be := cpu.New()
	l := NewSIDLoss(be)

	// A hard zero in the model spectrum against a positive target makes
	// the log ratio non-finite. No epsilon guard hides it.
	model := f32(t, be, tensor.Shape{1, 2}, []float32{0, 1})
	target := f32(t, be, tensor.Shape{1, 2}, []float32{0.5, 0.5})
	mask := fullMask(t, be, tensor.Shape{1, 2})

	got := l.Forward(model, target, mask).Data()
	finite := !math.IsNaN(float64(got[0])) && !math.IsInf(float64(got[0]), 0)
	assert.False(t, finite)
}

func TestSpectralLossesArePure(t *testing.T) {
	be := cpu.New()

	model := f32(t, be, tensor.Shape{1, 3}, []float32{0.2, 0.5, 0.3})
	target := f32(t, be, tensor.Shape{1, 3}, []float32{0.3, 0.3, 0.4})
	mask := fullMask(t, be, tensor.Shape{1, 3})

	sid := NewSIDLoss(be)
	first := sid.Forward(model, target, mask).Data()
	second := sid.Forward(model, target, mask).Data()
	assert.Equal(t, first, second)
	assert.Equal(t, []float32{0.2, 0.5, 0.3}, model.Data())

	wasserstein := NewWassersteinLoss(be)
	first = wasserstein.Forward(model, target, mask).Data()
	second = wasserstein.Forward(model, target, mask).Data()
	assert.Equal(t, first, second)
	assert.Equal(t, []float32{0.2, 0.5, 0.3}, model.Data())
}

func TestSpectralComputeUsesBatchFields(t *testing.T) {
	be := cpu.New()
	l := NewWassersteinLoss(be)

	spectra := f32(t, be, tensor.Shape{1, 3}, []float32{0.2, 0.3, 0.5})
	batch := &Batch[*cpu.CPUBackend]{Predictions: spectra, Targets: spectra}

	got := l.Compute(batch).Data()
	for i, v := range got {
		assert.InDelta(t, 0, v, 1e-6, "element %d", i)
	}
}
