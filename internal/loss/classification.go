package loss

import (
	"github.com/molnet-ml/molnet/internal/tensor"
)

// BCELoss computes elementwise binary cross-entropy on raw logits, in
// the numerically stable form
//
//	max(x, 0) - x*z + log(1 + exp(-|x|))
//
// which never exponentiates a positive value.
type BCELoss[B tensor.Backend] struct {
	backend B
}

// NewBCELoss creates a binary cross-entropy loss over logits.
func NewBCELoss[B tensor.Backend](backend B) *BCELoss[B] {
	return &BCELoss[B]{backend: backend}
}

// Name returns "binary_cross_entropy".
func (l *BCELoss[B]) Name() string { return "binary_cross_entropy" }

// Forward returns the per-element logistic loss with shape (batch, tasks).
// logits are raw scores; targets are 0/1 (or soft labels in [0, 1]).
func (l *BCELoss[B]) Forward(logits, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	zero := tensor.Zeros[float32](logits.Shape(), l.backend)
	maxPart := tensor.Where(logits.Greater(zero), logits, zero)
	softplus := logits.Abs().MulScalar(-1).Exp().AddScalar(1).Log()
	return maxPart.Sub(logits.Mul(targets)).Add(softplus)
}

// Compute implements Loss.
func (l *BCELoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	return l.Forward(batch.Predictions, batch.Targets)
}

// MCCLoss is a differentiable binary Matthews-correlation loss computed
// per task column from soft confusion-matrix sums. Predictions are
// probabilities, not thresholded classes; the loss is 1 - MCC, ranging
// over [0, 2] with 0 at perfect correlation.
type MCCLoss[B tensor.Backend] struct {
	backend B
}

// NewMCCLoss creates a binary soft-MCC loss.
func NewMCCLoss[B tensor.Backend](backend B) *MCCLoss[B] {
	return &MCCLoss[B]{backend: backend}
}

// Name returns "mcc".
func (l *MCCLoss[B]) Name() string { return "mcc" }

// Forward accumulates weighted soft TP/FP/FN/TN over the batch axis for
// each task and returns 1 - MCC per task, shape (tasks).
//
// probs and targets have shape (batch, tasks), weights is a (batch, 1)
// column broadcast across tasks, mask is (batch, tasks). A task with no
// variation in the batch yields sqrt of a zero product and the result is
// NaN, per the package numerical policy.
func (l *MCCLoss[B]) Forward(probs, targets, weights *tensor.Tensor[float32, B], mask *tensor.Tensor[bool, B]) *tensor.Tensor[float32, B] {
	wm := weights.Mul(mask.Float32())

	tp := targets.Mul(probs).Mul(wm).SumDim(0, false)
	fp := oneMinus(targets).Mul(probs).Mul(wm).SumDim(0, false)
	fn := targets.Mul(oneMinus(probs)).Mul(wm).SumDim(0, false)
	tn := oneMinus(targets).Mul(oneMinus(probs)).Mul(wm).SumDim(0, false)

	mcc := tp.Mul(tn).Sub(fp.Mul(fn)).
		Div(tp.Add(fp).Mul(tp.Add(fn)).Mul(tn.Add(fp)).Mul(tn.Add(fn)).Sqrt())
	return oneMinus(mcc)
}

// Compute implements Loss, defaulting Weights to uniform and Mask to
// all-valid when absent from the batch.
func (l *MCCLoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	weights, mask := binaryWeightsAndMask(l.backend, batch)
	return l.Forward(batch.Predictions, batch.Targets, weights, mask)
}

// F1Loss is the soft-F1 counterpart of MCCLoss: 1 - 2TP/(2TP + FN + FP)
// per task. It is not registered in the selector because MCC handles
// unbalanced datasets better, but remains available for direct use.
type F1Loss[B tensor.Backend] struct {
	backend B
}

// NewF1Loss creates a binary soft-F1 loss.
func NewF1Loss[B tensor.Backend](backend B) *F1Loss[B] {
	return &F1Loss[B]{backend: backend}
}

// Name returns "f1".
func (l *F1Loss[B]) Name() string { return "f1" }

// Forward returns 1 - F1 per task, shape (tasks). Inputs are shaped as
// in MCCLoss.Forward.
func (l *F1Loss[B]) Forward(probs, targets, weights *tensor.Tensor[float32, B], mask *tensor.Tensor[bool, B]) *tensor.Tensor[float32, B] {
	wm := weights.Mul(mask.Float32())

	tp := targets.Mul(probs).Mul(wm).SumDim(0, false)
	fp := oneMinus(targets).Mul(probs).Mul(wm).SumDim(0, false)
	fn := targets.Mul(oneMinus(probs)).Mul(wm).SumDim(0, false)

	tp2 := tp.MulScalar(2)
	return oneMinus(tp2.Div(tp2.Add(fn).Add(fp)))
}

// Compute implements Loss with the same defaults as MCCLoss.
func (l *F1Loss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	weights, mask := binaryWeightsAndMask(l.backend, batch)
	return l.Forward(batch.Predictions, batch.Targets, weights, mask)
}

// binaryWeightsAndMask resolves the optional batch fields the binary
// confusion losses share: a (batch, 1) weight column defaulting to ones
// and a (batch, tasks) mask defaulting to all-valid.
func binaryWeightsAndMask[B tensor.Backend](backend B, batch *Batch[B]) (*tensor.Tensor[float32, B], *tensor.Tensor[bool, B]) {
	weights := batch.Weights
	if weights == nil {
		weights = tensor.Ones[float32](tensor.Shape{batch.Predictions.Shape()[0], 1}, backend)
	}
	mask := batch.Mask
	if mask == nil {
		mask = tensor.Ones[bool](batch.Predictions.Shape(), backend)
	}
	return weights, mask
}
