package cpu

import (
	"github.com/molnet-ml/molnet/internal/tensor"
)

// Float32 kernels are hand-written loops; the float64 variants in
// kernels_float64.go delegate to gonum where it has an equivalent.

func binaryFloat32(op binaryOp, dst, a, b []float32) {
	switch op {
	case opAdd:
		for i := range a {
			dst[i] = a[i] + b[i]
		}
	case opSub:
		for i := range a {
			dst[i] = a[i] - b[i]
		}
	case opMul:
		for i := range a {
			dst[i] = a[i] * b[i]
		}
	case opDiv:
		for i := range a {
			dst[i] = a[i] / b[i]
		}
	}
}

func binaryBroadcastFloat32(op binaryOp, dst, a, b []float32, aShape, bShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		av := a[broadcastFlatIndex(i, outStrides, aStrides)]
		bv := b[broadcastFlatIndex(i, outStrides, bStrides)]
		switch op {
		case opAdd:
			dst[i] = av + bv
		case opSub:
			dst[i] = av - bv
		case opMul:
			dst[i] = av * bv
		case opDiv:
			dst[i] = av / bv
		}
	}
}
