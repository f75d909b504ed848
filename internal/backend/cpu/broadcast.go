package cpu

import (
	"github.com/molnet-ml/molnet/internal/tensor"
)

// broadcastStrides computes strides for reading inShape as if it were
// expanded to outShape: broadcast (size-1 or missing) dimensions get
// stride 0 so the same element is reused along them.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// broadcastFlatIndex maps a flat output index to the flat index in a
// broadcast source, using the source's broadcast-adjusted strides.
func broadcastFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
