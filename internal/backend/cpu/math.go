package cpu

import (
	"fmt"
	"math"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Element-wise math. Log and Sqrt intentionally follow IEEE-754 instead
// of validating their inputs: the loss layer's numerical policy is that
// zero denominators and degenerate confusion matrices propagate NaN/Inf
// to the caller rather than failing mid-batch.

// Exp computes e^x for each element.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryMath(x, "exp", math.Exp)
}

// Log computes the natural logarithm of each element.
// log(0) = -Inf, log(x < 0) = NaN.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryMath(x, "log", math.Log)
}

// Sqrt computes the square root of each element.
// sqrt(x < 0) = NaN.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryMath(x, "sqrt", math.Sqrt)
}

// Abs computes the absolute value of each element.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryMath(x, "abs", math.Abs)
}

func (cpu *CPUBackend) unaryMath(x *tensor.RawTensor, op string, f func(float64) float64) *tensor.RawTensor {
	result := cpu.newResultLike(x, op)

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(f(float64(v)))
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = f(v)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}
