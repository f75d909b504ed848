package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/molnet-ml/molnet/internal/tensor"
)

// Float64 kernels lean on gonum/floats for the contiguous fast paths.

func binaryFloat64(op binaryOp, dst, a, b []float64) {
	switch op {
	case opAdd:
		floats.AddTo(dst, a, b)
	case opSub:
		floats.SubTo(dst, a, b)
	case opMul:
		floats.MulTo(dst, a, b)
	case opDiv:
		floats.DivTo(dst, a, b)
	}
}

func binaryBroadcastFloat64(op binaryOp, dst, a, b []float64, aShape, bShape, outShape tensor.Shape) {
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
