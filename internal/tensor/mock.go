package tensor

import (
	"fmt"
	"math"
	"sort"
)

// Verify that mockData implements Data.
var _ Data = (*mockData)(nil)

// mockData is a simple Data implementation for handle tests.
// It stores every element as float64 regardless of the declared dtype and
// implements all operations naively for correctness verification. It also
// stands in for a foreign backend in cross-backend rejection tests: real
// dispatchers must reject it with ErrBackendMismatch.
type mockData struct {
	buf   []float64
	shape Shape
	dtype DType
}

// NewMockData creates a mock payload filled with the given value.
func NewMockData(value float64, shape Shape, dtype DType) Data {
	buf := make([]float64, shape.NumElements())
	for i := range buf {
		buf[i] = value
	}
	return &mockData{buf: buf, shape: shape.Clone(), dtype: dtype}
}

func (m *mockData) Zeros(shape Shape, dtype DType) (Data, error) {
	return NewMockData(0, shape, dtype), nil
}

func (m *mockData) Ones(shape Shape, dtype DType) (Data, error) {
	return NewMockData(1, shape, dtype), nil
}

func (m *mockData) Full(value float64, shape Shape, dtype DType) (Data, error) {
	if dtype == F32 {
		value = float64(float32(value))
	}
	return NewMockData(value, shape, dtype), nil
}

func (m *mockData) Add(rhs Data) (Data, error) {
	return m.elementwise(rhs, func(x, y float64) float64 { return x + y })
}

func (m *mockData) Sub(rhs Data) (Data, error) {
	return m.elementwise(rhs, func(x, y float64) float64 { return x - y })
}

func (m *mockData) Mul(rhs Data) (Data, error) {
	return m.elementwise(rhs, func(x, y float64) float64 { return x * y })
}

func (m *mockData) Div(rhs Data) (Data, error) {
	return m.elementwise(rhs, func(x, y float64) float64 { return x / y })
}

func (m *mockData) elementwise(rhs Data, op func(x, y float64) float64) (Data, error) {
	other, ok := rhs.(*mockData)
	if !ok {
		return nil, ErrBackendMismatch
	}
	if m.dtype != other.dtype {
		return nil, ErrDTypeMismatch
	}
	if !m.shape.Equal(other.shape) {
		return nil, ErrShapeMismatch
	}
	out := &mockData{buf: make([]float64, len(m.buf)), shape: m.shape.Clone(), dtype: m.dtype}
	for i := range out.buf {
		out.buf[i] = op(m.buf[i], other.buf[i])
	}
	return out, nil
}

func (m *mockData) MatMul(rhs Data) (Data, error) {
	other, ok := rhs.(*mockData)
	if !ok {
		return nil, ErrBackendMismatch
	}
	if m.dtype != other.dtype {
		return nil, ErrDTypeMismatch
	}
	if m.shape.Rank() != other.shape.Rank() || m.shape.Rank() < 1 || m.shape.Rank() > 2 {
		return nil, ErrUnsupportedShape
	}
	if m.shape.Rank() == 1 {
		if m.shape[0] != other.shape[0] {
			return nil, ErrDimMismatch
		}
		sum := 0.0
		for i := range m.buf {
			sum += m.buf[i] * other.buf[i]
		}
		return &mockData{buf: []float64{sum}, shape: Shape{1}, dtype: m.dtype}, nil
	}
	mm, k := m.shape[0], m.shape[1]
	k2, n := other.shape[0], other.shape[1]
	if k != k2 {
		return nil, ErrDimMismatch
	}
	out := &mockData{buf: make([]float64, mm*n), shape: Shape{mm, n}, dtype: m.dtype}
	for i := 0; i < mm; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for q := 0; q < k; q++ {
				sum += m.buf[i*k+q] * other.buf[q*n+j]
			}
			out.buf[i*n+j] = sum
		}
	}
	return out, nil
}

func (m *mockData) ReLU() (Data, error) {
	return m.mapElements(func(x float64) float64 { return math.Max(x, 0) }), nil
}

func (m *mockData) Exp() (Data, error) {
	return m.mapElements(math.Exp), nil
}

func (m *mockData) mapElements(f func(float64) float64) Data {
	out := &mockData{buf: make([]float64, len(m.buf)), shape: m.shape.Clone(), dtype: m.dtype}
	for i, v := range m.buf {
		out.buf[i] = f(v)
	}
	return out
}

func (m *mockData) Sum(dims []int) (Data, error) {
	rank := m.shape.Rank()
	for _, d := range dims {
		if d < 0 || d >= rank {
			return nil, ErrAxisOutOfRange
		}
	}
	if len(dims) == 0 {
		sum := 0.0
		for _, v := range m.buf {
			sum += v
		}
		return &mockData{buf: []float64{sum}, shape: Shape{1}, dtype: m.dtype}, nil
	}

	axes := append([]int(nil), dims...)
	sort.Ints(axes)
	cur := m
	for i, axis := range axes {
		shifted := axis - i
		if shifted < 0 {
			shifted = 0
		}
		cur = cur.sumAxis(shifted)
	}
	if cur.shape.Rank() == 0 {
		cur.shape = Shape{1}
	}
	return cur, nil
}

func (m *mockData) sumAxis(axis int) *mockData {
	outShape := m.shape.WithoutAxis(axis)
	out := &mockData{buf: make([]float64, outShape.NumElements()), shape: outShape, dtype: m.dtype}
	strides := m.shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	for i := range m.buf {
		rem := i
		outIdx := 0
		outDim := 0
		for d := 0; d < m.shape.Rank(); d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d != axis {
				outIdx += coord * outStrides[outDim]
				outDim++
			}
		}
		out.buf[outIdx] += m.buf[i]
	}
	return out
}

func (m *mockData) Transpose() (Data, error) {
	outShape := m.shape.Reversed()
	out := &mockData{buf: make([]float64, len(m.buf)), shape: outShape, dtype: m.dtype}
	strides := m.shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	rank := m.shape.Rank()
	for i := range m.buf {
		rem := i
		outIdx := 0
		for d := 0; d < rank; d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			outIdx += coord * outStrides[rank-1-d]
		}
		out.buf[outIdx] = m.buf[i]
	}
	return out, nil
}

func (m *mockData) At(idx ...int) (float64, bool) {
	if len(idx) != m.shape.Rank() {
		return 0, false
	}
	strides := m.shape.ComputeStrides()
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= m.shape[d] {
			return 0, false
		}
		flat += i * strides[d]
	}
	if flat >= len(m.buf) {
		return 0, false
	}
	return m.buf[flat], true
}

func (m *mockData) CopyFrom(src Data) error {
	other, ok := src.(*mockData)
	if !ok {
		return ErrBackendMismatch
	}
	if m.dtype != other.dtype {
		return fmt.Errorf("%s vs %s: %w", m.dtype, other.dtype, ErrDTypeMismatch)
	}
	if !m.shape.Equal(other.shape) {
		return fmt.Errorf("%v vs %v: %w", m.shape, other.shape, ErrShapeMismatch)
	}
	copy(m.buf, other.buf)
	return nil
}

func (m *mockData) Shape() Shape {
	return m.shape.Clone()
}

func (m *mockData) DType() DType {
	return m.dtype
}
