package loss

import (
	"fmt"
	"math"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// CrossEntropyLoss computes categorical cross-entropy over unnormalized
// scores, unreduced: one loss value per sample.
type CrossEntropyLoss[B tensor.Backend] struct {
	backend B
}

// NewCrossEntropyLoss creates a multiclass cross-entropy loss.
func NewCrossEntropyLoss[B tensor.Backend](backend B) *CrossEntropyLoss[B] {
	return &CrossEntropyLoss[B]{backend: backend}
}

// Name returns "cross_entropy".
func (l *CrossEntropyLoss[B]) Name() string { return "cross_entropy" }

// Forward returns -logSoftmax(logits)[target] per sample, shape (batch).
// logits has shape (batch, classes); targets holds class indices with
// shape (batch). Uses the log-sum-exp trick, so large scores do not
// overflow.
func (l *CrossEntropyLoss[B]) Forward(logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B]) *tensor.Tensor[float32, B] {
	shape := logits.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("cross_entropy: logits must be 2-dimensional (batch, classes), got %v", shape))
	}
	batchSize, numClasses := shape[0], shape[1]
	if !targets.Shape().Equal(tensor.Shape{batchSize}) {
		panic(fmt.Sprintf("cross_entropy: targets shape %v does not match batch size %d", targets.Shape(), batchSize))
	}

	scores := logits.Data()
	classes := targets.Data()
	out := tensor.Zeros[float32](tensor.Shape{batchSize}, l.backend)
	losses := out.Data()

	for i := 0; i < batchSize; i++ {
		row := scores[i*numClasses : (i+1)*numClasses]
		target := int(classes[i])
		if target < 0 || target >= numClasses {
			panic(fmt.Sprintf("cross_entropy: class index %d out of range [0, %d)", target, numClasses))
		}

		maxScore := row[0]
		for _, v := range row[1:] {
			if v > maxScore {
				maxScore = v
			}
		}
		var sumExp float64
		for _, v := range row {
			sumExp += math.Exp(float64(v - maxScore))
		}
		losses[i] = float32(math.Log(sumExp)) + maxScore - row[target]
	}

	return out
}

// Compute implements Loss.
func (l *CrossEntropyLoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	return l.Forward(batch.Predictions, requireClassTargets(batch))
}

// MCCMulticlassLoss is the multiclass soft-MCC loss. Unlike the binary
// variant it accumulates batch-global scalars rather than per-task sums,
// so the result is a single value for the whole batch. The asymmetry
// comes from the multiclass MCC derivation and is kept as-is.
type MCCMulticlassLoss[B tensor.Backend] struct {
	backend B
}

// NewMCCMulticlassLoss creates a multiclass soft-MCC loss.
func NewMCCMulticlassLoss[B tensor.Backend](backend B) *MCCMulticlassLoss[B] {
	return &MCCMulticlassLoss[B]{backend: backend}
}

// Name returns "mcc".
func (l *MCCMulticlassLoss[B]) Name() string { return "mcc" }

// Forward returns 1 - MCC as a single-element tensor of shape (1).
//
// probs has shape (batch, classes), targets holds class indices (batch),
// weights is a (batch, 1) column and mask a (batch, 1) bool column; both
// broadcast across the class axis. With
//
//	c  = weighted predicted mass at the true class
//	s  = total weighted predicted mass
//	pt = sum over classes of predicted-mass * true-mass
//	p2 = sum over classes of predicted-mass^2
//	t2 = sum over classes of true-mass^2
//
// the statistic is (c*s - pt) / sqrt((s^2 - p2) * (s^2 - t2)).
func (l *MCCMulticlassLoss[B]) Forward(probs *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], weights *tensor.Tensor[float32, B], mask *tensor.Tensor[bool, B]) *tensor.Tensor[float32, B] {
	numClasses := probs.Shape()[1]
	binTargets := tensor.OneHot(targets, numClasses)

	wm := weights.Mul(mask.Float32())
	weightedProbs := probs.Mul(wm)
	weightedTargets := binTargets.Mul(wm)

	c := weightedProbs.Mul(binTargets).Sum()
	s := weightedProbs.Sum()

	probMass := weightedProbs.SumDim(0, false)
	trueMass := weightedTargets.SumDim(0, false)
	pt := probMass.Mul(trueMass).Sum()
	p2 := probMass.Mul(probMass).Sum()
	t2 := trueMass.Mul(trueMass).Sum()

	s2 := s.Mul(s)
	mcc := c.Mul(s).Sub(pt).Div(s2.Sub(p2).Mul(s2.Sub(t2)).Sqrt())
	return oneMinus(mcc)
}

// Compute implements Loss, defaulting Weights and Mask to uniform
// all-valid columns when absent.
func (l *MCCMulticlassLoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	weights, mask := multiclassWeightsAndMask(l.backend, batch)
	return l.Forward(batch.Predictions, requireClassTargets(batch), weights, mask)
}

// F1MulticlassLoss is the batch-global soft-F1 loss for multiclass
// predictions. Like F1Loss it stays out of the selector registry in
// favor of MCC.
type F1MulticlassLoss[B tensor.Backend] struct {
	backend B
}

// NewF1MulticlassLoss creates a multiclass soft-F1 loss.
func NewF1MulticlassLoss[B tensor.Backend](backend B) *F1MulticlassLoss[B] {
	return &F1MulticlassLoss[B]{backend: backend}
}

// Name returns "f1".
func (l *F1MulticlassLoss[B]) Name() string { return "f1" }

// Forward returns 1 - 2TP/(TP + FN + P) as a single-element tensor,
// where TP is the weighted predicted mass at the true class, P the total
// weighted predicted mass and FN the weighted shortfall of the true-class
// predictions. Inputs are shaped as in MCCMulticlassLoss.Forward.
func (l *F1MulticlassLoss[B]) Forward(probs *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], weights *tensor.Tensor[float32, B], mask *tensor.Tensor[bool, B]) *tensor.Tensor[float32, B] {
	numClasses := probs.Shape()[1]
	binTargets := tensor.OneHot(targets, numClasses)
	wm := weights.Mul(mask.Float32())

	trueClassProbs := probs.Mul(binTargets).SumDim(1, true)
	tp := trueClassProbs.Mul(wm).Sum()
	p := probs.Mul(wm).Sum()
	fn := oneMinus(trueClassProbs.Mul(wm)).Sum()

	return oneMinus(tp.MulScalar(2).Div(tp.Add(fn).Add(p)))
}

// Compute implements Loss with the same defaults as MCCMulticlassLoss.
func (l *F1MulticlassLoss[B]) Compute(batch *Batch[B]) *tensor.Tensor[float32, B] {
	weights, mask := multiclassWeightsAndMask(l.backend, batch)
	return l.Forward(batch.Predictions, requireClassTargets(batch), weights, mask)
}

func requireClassTargets[B tensor.Backend](batch *Batch[B]) *tensor.Tensor[int32, B] {
	if batch.ClassTargets == nil {
		panic("multiclass loss: batch has no class targets")
	}
	return batch.ClassTargets
}

// multiclassWeightsAndMask resolves the optional (batch, 1) weight and
// mask columns the multiclass confusion losses share.
func multiclassWeightsAndMask[B tensor.Backend](backend B, batch *Batch[B]) (*tensor.Tensor[float32, B], *tensor.Tensor[bool, B]) {
	batchSize := batch.Predictions.Shape()[0]
	weights := batch.Weights
	if weights == nil {
		weights = tensor.Ones[float32](tensor.Shape{batchSize, 1}, backend)
	}
	mask := batch.Mask
	if mask == nil {
		mask = tensor.Ones[bool](tensor.Shape{batchSize, 1}, backend)
	}
	return weights, mask
}
