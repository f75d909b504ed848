package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 1, Shape{1}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{3, 1}, Shape{2, 3}.ComputeStrides())
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{name: "identical", a: Shape{2, 3}, b: Shape{2, 3}, want: Shape{2, 3}},
		{name: "row against matrix", a: Shape{2, 3}, b: Shape{1, 3}, want: Shape{2, 3}, broadcast: true},
		{name: "column against matrix", a: Shape{2, 3}, b: Shape{2, 1}, want: Shape{2, 3}, broadcast: true},
		{name: "missing leading dim", a: Shape{2, 3}, b: Shape{3}, want: Shape{2, 3}, broadcast: true},
		{name: "scalar fill", a: Shape{4, 5}, b: Shape{1}, want: Shape{4, 5}, broadcast: true},
		{name: "incompatible", a: Shape{2, 3}, b: Shape{2, 4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.broadcast, broadcast)
		})
	}
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, raw.Shape())
	assert.Equal(t, Float32, raw.DType())
	assert.Equal(t, CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, raw.AsFloat32())

	_, err = NewRaw(Shape{0}, Float32, CPU)
	assert.Error(t, err)
}

func TestRawTensorTypedViewsPanicOnWrongDType(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)

	assert.NotPanics(t, func() { raw.AsFloat32() })
	assert.Panics(t, func() { raw.AsFloat64() })
	assert.Panics(t, func() { raw.AsInt32() })
	assert.Panics(t, func() { raw.AsBool() })
}

func TestRawTensorCloneSharesBuffer(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)
	raw.AsFloat32()[0] = 7

	clone := raw.Clone()
	assert.Equal(t, float32(7), clone.AsFloat32()[0])

	clone.AsFloat32()[1] = 9
	assert.Equal(t, float32(9), raw.AsFloat32()[1])
}

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 1, Bool.Size())
}
