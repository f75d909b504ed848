package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/molnet-ml/molnet/internal/parallel"
	"github.com/molnet-ml/molnet/internal/tensor"
)

// CumSum computes the inclusive cumulative sum along a dimension.
func (cpu *CPUBackend) CumSum(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("cumsum: dim %d out of range for %d-dimensional tensor", dim, len(shape)))
	}

	result := cpu.newResultLike(x, "cumsum")

	dimSize := shape[dim]
	strides := shape.ComputeStrides()
	outer, inner := 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}

	// Scan lines are independent of each other.
	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		parallel.ForRows(outer*inner, func(p int) {
			o, in := p/inner, p%inner
			base := o*strides[dim]*dimSize + in
			var running float32
			for d := 0; d < dimSize; d++ {
				running += src[base+d*strides[dim]]
				dst[base+d*strides[dim]] = running
			}
		}, cpu.par)
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		if dim == len(shape)-1 {
			// Last dimension is contiguous, scan each row directly.
			parallel.ForRows(outer, func(o int) {
				row := src[o*dimSize : (o+1)*dimSize]
				floats.CumSum(dst[o*dimSize:(o+1)*dimSize], row)
			}, cpu.par)
			break
		}
		parallel.ForRows(outer*inner, func(p int) {
			o, in := p/inner, p%inner
			base := o*strides[dim]*dimSize + in
			var running float64
			for d := 0; d < dimSize; d++ {
				running += src[base+d*strides[dim]]
				dst[base+d*strides[dim]] = running
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("cumsum: unsupported dtype %s", x.DType()))
	}

	return result
}
