package cpu

import (
	"fmt"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Boolean operations on Bool tensors, broadcasting like the binary ops.

// And computes element-wise logical AND.
func (cpu *CPUBackend) And(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinary("and", a, b, func(x, y bool) bool { return x && y })
}

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinary("or", a, b, func(x, y bool) bool { return x || y })
}

// Not computes element-wise logical NOT.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic("not: tensor must be bool dtype")
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("not: %v", err))
	}

	src, dst := x.AsBool(), result.AsBool()
	for i, v := range src {
		dst[i] = !v
	}
	return result
}

func (cpu *CPUBackend) boolBinary(op string, a, b *tensor.RawTensor, f func(x, y bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		panic(fmt.Sprintf("%s: both tensors must be bool dtype", op))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	av, bv, dst := a.AsBool(), b.AsBool(), result.AsBool()
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = f(av[broadcastFlatIndex(i, outStrides, aStrides)], bv[broadcastFlatIndex(i, outStrides, bStrides)])
	}
	return result
}
