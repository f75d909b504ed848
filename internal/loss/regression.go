package loss

import (
	"github.com/molnet-ml/molnet/internal/tensor"
)

// MSELoss computes the elementwise squared error, unreduced.
type MSELoss[B tensor.Backend] struct {
	backend B
}

// NewMSELoss creates a mean-squared-error loss (without the mean: the
// caller reduces).
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return &MSELoss[B]{backend: backend}
}

// Name returns "mse".
func (l *MSELoss[B]) Name() string { return "mse" }

// Forward returns (predictions - targets)^2 with shape (batch, tasks).
func (l *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	diff := predictions.Sub(targets)
	return diff.Mul(diff)
}

// Compute implements Loss.
func (l *MSELoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	return l.Forward(batch.Predictions, batch.Targets)
}

// BoundedMSELoss is squared error for censored regression targets: a
// target flagged as a bound incurs no penalty while the prediction stays
// on the feasible side of it.
type BoundedMSELoss[B tensor.Backend] struct {
	backend B
}

// NewBoundedMSELoss creates a bounded MSE loss.
func NewBoundedMSELoss[B tensor.Backend](backend B) *BoundedMSELoss[B] {
	return &BoundedMSELoss[B]{backend: backend}
}

// Name returns "bounded_mse".
func (l *BoundedMSELoss[B]) Name() string { return "bounded_mse" }

// Forward clamps predictions onto targets wherever the prediction
// violates no known bound, then returns the elementwise squared error.
// A prediction below a lessThan target is clamped up (the true value is
// only known to be below the bound, so undershooting is free); a
// prediction above a greaterThan target is clamped down symmetrically.
func (l *BoundedMSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B], lessThan, greaterThan *tensor.Tensor[bool, B]) *tensor.Tensor[float32, B] {
	clampUp := predictions.Lower(targets).And(lessThan)
	predictions = tensor.Where(clampUp, targets, predictions)

	clampDown := predictions.Greater(targets).And(greaterThan)
	predictions = tensor.Where(clampDown, targets, predictions)

	diff := predictions.Sub(targets)
	return diff.Mul(diff)
}

// Compute implements Loss. Nil bound indicators mean no bounds, which
// degrades to plain MSE.
func (l *BoundedMSELoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	lessThan := batch.LessThan
	if lessThan == nil {
		lessThan = tensor.Zeros[bool](batch.Predictions.Shape(), l.backend)
	}
	greaterThan := batch.GreaterThan
	if greaterThan == nil {
		greaterThan = tensor.Zeros[bool](batch.Predictions.Shape(), l.backend)
	}
	return l.Forward(batch.Predictions, batch.Targets, lessThan, greaterThan)
}
