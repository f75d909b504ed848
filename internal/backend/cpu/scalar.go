package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Scalar operations: element-wise combination with a single value.
// The scalar's Go type must match the tensor dtype.

// AddScalar adds a scalar value to each element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResultLike(x, "addScalar")

	switch x.DType() {
	case tensor.Float32:
		s := scalar.(float32)
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = v + s
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.AddConst(scalar.(float64), dst)
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// SubScalar subtracts a scalar value from each element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResultLike(x, "subScalar")

	switch x.DType() {
	case tensor.Float32:
		s := scalar.(float32)
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = v - s
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.AddConst(-scalar.(float64), dst)
	default:
		panic(fmt.Sprintf("subScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// MulScalar multiplies each element by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResultLike(x, "mulScalar")

	switch x.DType() {
	case tensor.Float32:
		s := scalar.(float32)
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = v * s
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.Scale(scalar.(float64), dst)
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// DivScalar divides each element by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResultLike(x, "divScalar")

	switch x.DType() {
	case tensor.Float32:
		s := scalar.(float32)
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = v / s
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.Scale(1/scalar.(float64), dst)
	default:
		panic(fmt.Sprintf("divScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// newResultLike allocates a result tensor with x's shape and dtype on
// the backend's device.
func (cpu *CPUBackend) newResultLike(x *tensor.RawTensor, op string) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
