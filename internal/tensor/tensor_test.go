package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsLeaf(t *testing.T) {
	x := New(NewMockData(1, Shape{2, 2}, F32))

	assert.True(t, x.Op().IsLeaf())
	assert.Equal(t, OpNone, x.Op().Kind)
	assert.Empty(t, x.Op().Inputs)
}

func TestBinaryOpRecordsOperands(t *testing.T) {
	a := New(NewMockData(2, Shape{2}, F32))
	b := New(NewMockData(3, Shape{2}, F32))

	c, err := a.Add(b)
	require.NoError(t, err)

	op := c.Op()
	assert.Equal(t, OpAdd, op.Kind)
	require.Len(t, op.Inputs, 2)
	assert.Same(t, a, op.Inputs[0])
	assert.Same(t, b, op.Inputs[1])

	v, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestEveryOperationKind(t *testing.T) {
	a := New(NewMockData(2, Shape{2, 2}, F64))
	b := New(NewMockData(3, Shape{2, 2}, F64))

	sub, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, OpSub, sub.Op().Kind)

	mul, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, OpMul, mul.Op().Kind)

	div, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, OpDiv, div.Op().Kind)

	mm, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, OpMatMul, mm.Op().Kind)

	relu, err := a.ReLU()
	require.NoError(t, err)
	assert.Equal(t, OpReLU, relu.Op().Kind)
	require.Len(t, relu.Op().Inputs, 1)
	assert.Same(t, a, relu.Op().Inputs[0])

	exp, err := a.Exp()
	require.NoError(t, err)
	assert.Equal(t, OpExp, exp.Op().Kind)

	tr, err := a.Transpose()
	require.NoError(t, err)
	assert.Equal(t, OpTranspose, tr.Op().Kind)
}

func TestSumRecordsDims(t *testing.T) {
	a := New(NewMockData(5, Shape{2, 3, 4}, F32))

	s, err := a.Sum(2, 1)
	require.NoError(t, err)

	op := s.Op()
	assert.Equal(t, OpSum, op.Kind)
	assert.Equal(t, []int{2, 1}, op.Dims)
	assert.Equal(t, Shape{2}, s.Shape())

	v, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, 60.0, v)
}

func TestSumEmptyDims(t *testing.T) {
	a := New(NewMockData(5, Shape{2, 3}, F32))

	s, err := a.Sum()
	require.NoError(t, err)
	assert.Equal(t, Shape{1}, s.Shape())

	v, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, 30.0, v)
}

func TestOperationErrorsWrapKinds(t *testing.T) {
	a := New(NewMockData(1, Shape{2}, F32))
	b := New(NewMockData(1, Shape{3}, F32))

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	c := New(NewMockData(1, Shape{2}, F64))
	_, err = a.Mul(c)
	assert.ErrorIs(t, err, ErrDTypeMismatch)

	_, err = a.Sum(5)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestZerosLikeAndOnesLike(t *testing.T) {
	a := New(NewMockData(7, Shape{2}, F32))

	z, err := a.ZerosLike(Shape{3}, F64)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, z.Shape())
	assert.Equal(t, F64, z.DType())
	assert.True(t, z.Op().IsLeaf())
	v, ok := z.At(0)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	o, err := a.OnesLike(Shape{2, 2}, F32)
	require.NoError(t, err)
	v, ok = o.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestCopyFromPropagatesErrors(t *testing.T) {
	dst := New(NewMockData(0, Shape{2}, F32))
	src := New(NewMockData(1, Shape{3}, F32))

	err := dst.CopyFrom(src)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	ok := New(NewMockData(4, Shape{2}, F32))
	require.NoError(t, dst.CopyFrom(ok))
	v, found := dst.At(1)
	require.True(t, found)
	assert.Equal(t, 4.0, v)
}

func TestGetAsCasts(t *testing.T) {
	d := NewMockData(2.75, Shape{2}, F64)

	f, ok := GetAs[float64](d, 0)
	require.True(t, ok)
	assert.Equal(t, 2.75, f)

	// Integer targets truncate toward zero.
	i, ok := GetAs[int32](d, 1)
	require.True(t, ok)
	assert.Equal(t, int32(2), i)

	_, ok = GetAs[float32](d, 5)
	assert.False(t, ok)
}

func TestOpKindString(t *testing.T) {
	kinds := map[OpKind]string{
		OpNone:      "none",
		OpAdd:       "add",
		OpSub:       "sub",
		OpMul:       "mul",
		OpDiv:       "div",
		OpMatMul:    "matmul",
		OpReLU:      "relu",
		OpExp:       "exp",
		OpSum:       "sum",
		OpTranspose: "transpose",
	}
	for k, want := range kinds {
		assert.Equal(t, want, k.String())
	}
}
