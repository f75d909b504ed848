package cpu

import (
	"fmt"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Where selects elements from x where condition is true and from y
// otherwise. All three tensors broadcast against each other.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool dtype, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err = tensor.BroadcastShapes(outShape, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(condition.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)
	cond := condition.AsBool()
	n := outShape.NumElements()

	switch x.DType() {
	case tensor.Float32:
		xv, yv, dst := x.AsFloat32(), y.AsFloat32(), result.AsFloat32()
		for i := 0; i < n; i++ {
			if cond[broadcastFlatIndex(i, outStrides, condStrides)] {
				dst[i] = xv[broadcastFlatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = yv[broadcastFlatIndex(i, outStrides, yStrides)]
			}
		}
	case tensor.Float64:
		xv, yv, dst := x.AsFloat64(), y.AsFloat64(), result.AsFloat64()
		for i := 0; i < n; i++ {
			if cond[broadcastFlatIndex(i, outStrides, condStrides)] {
				dst[i] = xv[broadcastFlatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = yv[broadcastFlatIndex(i, outStrides, yStrides)]
			}
		}
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// OneHot expands an Int32 index tensor of shape (d0, ..., dk) into a
// Float32 tensor of shape (d0, ..., dk, numClasses) with a 1 at each
// index position. Panics if an index is outside [0, numClasses).
func (cpu *CPUBackend) OneHot(indices *tensor.RawTensor, numClasses int) *tensor.RawTensor {
	if indices.DType() != tensor.Int32 {
		panic(fmt.Sprintf("oneHot: indices must be int32 dtype, got %s", indices.DType()))
	}
	if numClasses <= 0 {
		panic(fmt.Sprintf("oneHot: numClasses must be positive, got %d", numClasses))
	}

	outShape := append(indices.Shape().Clone(), numClasses)
	result, err := tensor.NewRaw(outShape, tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("oneHot: %v", err))
	}

	idx := indices.AsInt32()
	dst := result.AsFloat32()
	for i, class := range idx {
		if class < 0 || int(class) >= numClasses {
			panic(fmt.Sprintf("oneHot: index %d out of range [0, %d)", class, numClasses))
		}
		dst[i*numClasses+int(class)] = 1
	}

	return result
}
