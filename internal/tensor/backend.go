package tensor

// Backend is the compute interface the loss layer is written against.
// A backend owns a device; every operation allocates its result on that
// device, which is how auxiliary fill tensors end up in the same memory
// space as the inputs they are combined with.
//
// Operations panic on programmer errors (shape or dtype misuse).
// Numerical edge cases are not errors: Log and Sqrt follow IEEE-754
// semantics (log(0) = -Inf, log/sqrt of a negative = NaN), so division by
// a zero row sum or a degenerate confusion matrix propagates non-finite
// values instead of failing.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise operations with a scalar.
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor

	// Comparisons, returning Bool tensors.
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor

	// Boolean operations on Bool tensors.
	And(a, b *RawTensor) *RawTensor
	Or(a, b *RawTensor) *RawTensor
	Not(x *RawTensor) *RawTensor

	// Selection and indexing.
	Where(condition, x, y *RawTensor) *RawTensor
	OneHot(indices *RawTensor, numClasses int) *RawTensor

	// Reductions and scans.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	CumSum(x *RawTensor, dim int) *RawTensor

	// Shape and type conversion.
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
