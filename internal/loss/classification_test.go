package loss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/molnet-ml/molnet/internal/backend/cpu"
	"github.com/molnet-ml/molnet/internal/tensor"
)

func TestBCELoss(t *testing.T) {
	be := cpu.New()
	l := NewBCELoss(be)

	logits := f32(t, be, tensor.Shape{1, 3}, []float32{0, 2, -1})
	targets := f32(t, be, tensor.Shape{1, 3}, []float32{0, 1, 0})

	got := l.Forward(logits, targets).Data()
	// max(x,0) - x*z + log(1+exp(-|x|)) per element.
	assert.InDelta(t, math.Log(2), got[0], 1e-6)
	assert.InDelta(t, math.Log(1+math.Exp(-2)), got[1], 1e-6)
	assert.InDelta(t, math.Log(1+math.Exp(-1)), got[2], 1e-6)
}

func TestBCELossStableForLargeLogits(t *testing.T) {
	be := cpu.New()
	l := NewBCELoss(be)

	logits := f32(t, be, tensor.Shape{1, 2}, []float32{100, -100})
	targets := f32(t, be, tensor.Shape{1, 2}, []float32{1, 0})

	got := l.Forward(logits, targets).Data()
	assert.False(t, math.IsInf(float64(got[0]), 0))
	assert.False(t, math.IsInf(float64(got[1]), 0))
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, 0, got[1], 1e-6)
}

func TestMCCLossPerfectPrediction(t *testing.T) {
	be := cpu.New()
	l := NewMCCLoss(be)

	targets := f32(t, be, tensor.Shape{4, 2}, []float32{
		1, 0,
		0, 1,
		1, 1,
		0, 0,
	})
	weights := f32(t, be, tensor.Shape{4, 1}, []float32{1, 1, 1, 1})
	mask := boolean(t, be, tensor.Shape{4, 2}, []bool{true, true, true, true, true, true, true, true})

	got := l.Forward(targets, targets, weights, mask)
	assert.Equal(t, tensor.Shape{2}, got.Shape())
	for task, v := range got.Data() {
		assert.InDelta(t, 0, v, 1e-5, "task %d", task)
	}
}

func TestMCCLossAntiCorrelated(t *testing.T) {
	be := cpu.New()
	l := NewMCCLoss(be)

	targets := f32(t, be, tensor.Shape{4, 1}, []float32{1, 0, 1, 0})
	preds := f32(t, be, tensor.Shape{4, 1}, []float32{0, 1, 0, 1})
	weights := f32(t, be, tensor.Shape{4, 1}, []float32{1, 1, 1, 1})
	mask := boolean(t, be, tensor.Shape{4, 1}, []bool{true, true, true, true})

	got := l.Forward(preds, targets, weights, mask)
	assert.InDelta(t, 2, got.Data()[0], 1e-5)
}

func TestMCCLossMaskExcludesRows(t *testing.T) {
	be := cpu.New()
	l := NewMCCLoss(be)

	// Last row disagrees but is masked out, so the column is still a
	// perfect prediction.
	targets := f32(t, be, tensor.Shape{3, 1}, []float32{1, 0, 1})
	preds := f32(t, be, tensor.Shape{3, 1}, []float32{1, 0, 0})
	weights := f32(t, be, tensor.Shape{3, 1}, []float32{1, 1, 1})
	mask := boolean(t, be, tensor.Shape{3, 1}, []bool{true, true, false})

	got := l.Forward(preds, targets, weights, mask)
	assert.InDelta(t, 0, got.Data()[0], 1e-5)
}

func TestMCCLossDegenerateColumnIsNaN(t *testing.T) {
	be := cpu.New()
	l := NewMCCLoss(be)

	// All-positive targets leave TN = FP = 0: zero denominator, NaN out.
	targets := f32(t, be, tensor.Shape{2, 1}, []float32{1, 1})
	weights := f32(t, be, tensor.Shape{2, 1}, []float32{1, 1})
	mask := boolean(t, be, tensor.Shape{2, 1}, []bool{true, true})

	got := l.Forward(targets, targets, weights, mask)
	assert.True(t, math.IsNaN(float64(got.Data()[0])))
}

func TestMCCLossComputeDefaults(t *testing.T) {
	be := cpu.New()
	l := NewMCCLoss(be)

	targets := f32(t, be, tensor.Shape{2, 1}, []float32{1, 0})
	batch := &Batch[*cpu.CPUBackend]{Predictions: targets, Targets: targets}

	got := l.Compute(batch)
	assert.InDelta(t, 0, got.Data()[0], 1e-5)
}

func TestF1LossPerfectPrediction(t *testing.T) {
	be := cpu.New()
	l := NewF1Loss(be)

	targets := f32(t, be, tensor.Shape{4, 2}, []float32{
		1, 0,
		0, 1,
		1, 1,
		0, 0,
	})
	weights := f32(t, be, tensor.Shape{4, 1}, []float32{1, 1, 1, 1})
	mask := boolean(t, be, tensor.Shape{4, 2}, []bool{true, true, true, true, true, true, true, true})

	got := l.Forward(targets, targets, weights, mask)
	for task, v := range got.Data() {
		assert.InDelta(t, 0, v, 1e-5, "task %d", task)
	}
}

func TestF1LossHalfConfidence(t *testing.T) {
	be := cpu.New()
	l := NewF1Loss(be)

	// Uniform 0.5 predictions: TP = FP = FN, F1 = 2/(2+1+1) * ... = 0.5.
	targets := f32(t, be, tensor.Shape{2, 1}, []float32{1, 0})
	preds := f32(t, be, tensor.Shape{2, 1}, []float32{0.5, 0.5})
	weights := f32(t, be, tensor.Shape{2, 1}, []float32{1, 1})
	mask := boolean(t, be, tensor.Shape{2, 1}, []bool{true, true})

	got := l.Forward(preds, targets, weights, mask)
	assert.InDelta(t, 0.5, got.Data()[0], 1e-5)
}

func TestMCCLossIsPure(t *testing.T) {
	be := cpu.New()
	l := NewMCCLoss(be)

	targets := f32(t, be, tensor.Shape{2, 1}, []float32{1, 0})
	preds := f32(t, be, tensor.Shape{2, 1}, []float32{0.9, 0.2})
	weights := f32(t, be, tensor.Shape{2, 1}, []float32{1, 1})
	mask := boolean(t, be, tensor.Shape{2, 1}, []bool{true, true})

	first := l.Forward(preds, targets, weights, mask).Data()
	second := l.Forward(preds, targets, weights, mask).Data()
	assert.Equal(t, first, second)
	assert.Equal(t, []float32{0.9, 0.2}, preds.Data())
}
