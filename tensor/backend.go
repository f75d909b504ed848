// Copyright 2026 The MolNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go, float32 loops plus gonum-backed float64 kernels
//   - backend/cuda: NVIDIA GPU (planned)
//
// Every operation allocates its result on the backend's device, which is
// how the loss layer's auxiliary fill tensors end up in the same memory
// space as the inputs they are combined with.
//
// Operations panic on programmer errors (shape or dtype misuse).
// Numerical edge cases are not errors: Div, Log and Sqrt follow IEEE-754
// semantics, so degenerate loss inputs propagate NaN/Inf instead of
// failing.
//
// Example:
//
//	import (
//	    "github.com/molnet-ml/molnet/backend/cpu"
//	    "github.com/molnet-ml/molnet/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor  // e^x.
	Log(x *RawTensor) *RawTensor  // Natural logarithm; log(0) = -Inf.
	Sqrt(x *RawTensor) *RawTensor // Square root; sqrt(neg) = NaN.
	Abs(x *RawTensor) *RawTensor  // Absolute value.

	// Comparisons, returning Bool tensors.
	Greater(a, b *RawTensor) *RawTensor // a > b.
	Lower(a, b *RawTensor) *RawTensor   // a < b.
	Equal(a, b *RawTensor) *RawTensor   // a == b.

	// Boolean operations on Bool tensors.
	And(a, b *RawTensor) *RawTensor // Logical AND.
	Or(a, b *RawTensor) *RawTensor  // Logical OR.
	Not(x *RawTensor) *RawTensor    // Logical NOT.

	// Selection and indexing.
	Where(condition, x, y *RawTensor) *RawTensor      // Select x where condition, else y.
	OneHot(indices *RawTensor, numClasses int) *RawTensor // Int32 indices to Float32 indicators.

	// Reductions and scans.
	Sum(x *RawTensor) *RawTensor                           // Full reduction to shape (1).
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Sum along one dimension.
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Mean along one dimension.
	CumSum(x *RawTensor, dim int) *RawTensor               // Inclusive running sum.

	// Shape and type conversion.
	Reshape(x *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Cast(x *RawTensor, dtype DataType) *RawTensor    // Convert dtype.

	// Metadata.
	Name() string   // Backend name for diagnostics.
	Device() Device // Device results are allocated on.
}
