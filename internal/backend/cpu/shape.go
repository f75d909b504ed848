package cpu

import (
	"fmt"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Reshape returns a copy of x with a new shape holding the same number
// of elements.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if newShape.NumElements() != x.Shape().NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			x.Shape(), x.Shape().NumElements(), newShape, newShape.NumElements()))
	}

	result, err := tensor.NewRaw(newShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		copy(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		copy(result.AsFloat64(), x.AsFloat64())
	case tensor.Int32:
		copy(result.AsInt32(), x.AsInt32())
	case tensor.Bool:
		copy(result.AsBool(), x.AsBool())
	default:
		panic(fmt.Sprintf("reshape: unsupported dtype %s", x.DType()))
	}

	return result
}

// Cast converts x to another dtype. Bool casts to 0/1 and numeric
// values cast to bool as v != 0.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	n := x.Shape().NumElements()
	read := castReader(x)
	switch dtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = float32(read(i))
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i := 0; i < n; i++ {
			dst[i] = read(i)
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i := 0; i < n; i++ {
			dst[i] = int32(read(i))
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i := 0; i < n; i++ {
			dst[i] = read(i) != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}

	return result
}

// castReader returns an element accessor that widens any supported
// dtype to float64.
func castReader(x *tensor.RawTensor) func(i int) float64 {
	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		return func(i int) float64 { return float64(src[i]) }
	case tensor.Float64:
		src := x.AsFloat64()
		return func(i int) float64 { return src[i] }
	case tensor.Int32:
		src := x.AsInt32()
		return func(i int) float64 { return float64(src[i]) }
	case tensor.Bool:
		src := x.AsBool()
		return func(i int) float64 {
			if src[i] {
				return 1
			}
			return 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
}
