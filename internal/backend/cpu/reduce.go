package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/molnet-ml/molnet/internal/parallel"
	"github.com/molnet-ml/molnet/internal/tensor"
)

// Sum reduces all elements to a single value with shape (1).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{1}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var total float32
		for _, v := range x.AsFloat32() {
			total += v
		}
		result.AsFloat32()[0] = total
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim reduces along a single dimension. With keepDim the reduced
// dimension stays as size 1, otherwise it is removed.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim(x, dim, keepDim, "sumDim", false)
}

// MeanDim reduces along a single dimension by arithmetic mean. With
// keepDim the reduced dimension stays as size 1, otherwise it is removed.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim(x, dim, keepDim, "meanDim", true)
}

func (cpu *CPUBackend) reduceDim(x *tensor.RawTensor, dim int, keepDim bool, op string, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("%s: dim %d out of range for %d-dimensional tensor", op, dim, len(shape)))
	}

	dimSize := shape[dim]
	outShape := reducedShape(shape, dim, keepDim)
	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	// Each output position accumulates dimSize elements spaced by the
	// input stride of the reduced dimension. Positions are independent,
	// so they parallelize across workers.
	strides := shape.ComputeStrides()
	outer, inner := 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		parallel.For(outer*inner, func(p int) {
			o, in := p/inner, p%inner
			base := o*strides[dim]*dimSize + in
			var total float32
			for d := 0; d < dimSize; d++ {
				total += src[base+d*strides[dim]]
			}
			if mean {
				total /= float32(dimSize)
			}
			dst[p] = total
		}, cpu.par)
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		parallel.For(outer*inner, func(p int) {
			o, in := p/inner, p%inner
			base := o*strides[dim]*dimSize + in
			var total float64
			for d := 0; d < dimSize; d++ {
				total += src[base+d*strides[dim]]
			}
			if mean {
				total /= float64(dimSize)
			}
			dst[p] = total
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, s := range shape {
		if i != dim {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = tensor.Shape{1}
	}
	return out
}
