package cpu

import (
	"fmt"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Comparison operations return Bool tensors and broadcast like the
// element-wise binary ops.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", a, b, func(x, y float64) bool { return x > y })
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lower", a, b, func(x, y float64) bool { return x < y })
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("equal", a, b, func(x, y float64) bool { return x == y })
}

func (cpu *CPUBackend) compare(op string, a, b *tensor.RawTensor, pred func(x, y float64) bool) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	dst := result.AsBool()
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	n := outShape.NumElements()

	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := 0; i < n; i++ {
			x := av[broadcastFlatIndex(i, outStrides, aStrides)]
			y := bv[broadcastFlatIndex(i, outStrides, bStrides)]
			dst[i] = pred(float64(x), float64(y))
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := 0; i < n; i++ {
			x := av[broadcastFlatIndex(i, outStrides, aStrides)]
			y := bv[broadcastFlatIndex(i, outStrides, bStrides)]
			dst[i] = pred(x, y)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, a.DType()))
	}

	return result
}
