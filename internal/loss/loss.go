package loss

import (
	"github.com/molnet-ml/molnet/internal/tensor"
)

// Batch carries one training batch's tensors. Which fields are required
// depends on the loss: regression losses read Predictions/Targets,
// bounded regression adds the bound indicator columns, confusion-matrix
// losses add Weights and Mask, multiclass losses read ClassTargets
// instead of Targets.
type Batch[B tensor.Backend] struct {
	// Predictions has shape (batch, tasks), (batch, classes) or
	// (batch, spectrum_length) depending on the dataset type.
	Predictions *tensor.Tensor[float32, B]

	// Targets matches Predictions' shape. Unused by multiclass losses.
	Targets *tensor.Tensor[float32, B]

	// ClassTargets holds class indices with shape (batch), multiclass only.
	ClassTargets *tensor.Tensor[int32, B]

	// Mask marks valid positions. Shape (batch, tasks) for binary
	// confusion losses and (batch, n) for spectral losses, (batch, 1)
	// for multiclass. Nil means everything is valid.
	Mask *tensor.Tensor[bool, B]

	// Weights is a per-sample column with shape (batch, 1), broadcast
	// across the task/class axis. Nil means uniform weights.
	Weights *tensor.Tensor[float32, B]

	// LessThan and GreaterThan mark censored regression targets that are
	// bounds rather than exact values, shape (batch, tasks). Nil means no
	// bounds.
	LessThan    *tensor.Tensor[bool, B]
	GreaterThan *tensor.Tensor[bool, B]
}

// Loss computes an unreduced per-element loss for a batch.
type Loss[B tensor.Backend] interface {
	// Compute returns the loss tensor. Its shape depends on the concrete
	// loss; see each implementation. Panics on shape or missing-field
	// misuse, mirroring the tensor layer.
	Compute(batch *Batch[B]) *tensor.Tensor[float32, B]

	// Name returns the registry name of the loss, e.g. "bounded_mse".
	Name() string
}

// oneMinus computes 1 - t element-wise, the recurring closing step of
// the correlation-statistic losses.
func oneMinus[B tensor.Backend](t *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return t.MulScalar(-1).AddScalar(1)
}
