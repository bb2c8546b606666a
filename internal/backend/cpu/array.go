package cpu

import (
	"fmt"
	"unsafe"

	"github.com/stemmr/Mantis/internal/tensor"
)

// Array is the CPU-resident n-dimensional array. It holds a contiguous
// row-major buffer whose length always equals NumElements * dtype.Size().
// The dtype is immutable across the array's lifetime.
type Array struct {
	data   []byte
	shape  tensor.Shape
	stride []int
	dtype  tensor.DType
}

// NewArray allocates a zeroed array with the given shape and dtype.
func NewArray(shape tensor.Shape, dtype tensor.DType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("unknown dtype %d", dtype)
	}

	return &Array{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Zeros allocates an all-zero array.
func Zeros(shape tensor.Shape, dtype tensor.DType) (*Array, error) {
	return NewArray(shape, dtype)
}

// Ones allocates an all-one array.
func Ones(shape tensor.Shape, dtype tensor.DType) (*Array, error) {
	return Full(1, shape, dtype)
}

// Full allocates an array with every element set to value.
// The value narrows to float32 for F32 arrays.
func Full(value float64, shape tensor.Shape, dtype tensor.DType) (*Array, error) {
	a, err := NewArray(shape, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case tensor.F32:
		buf := a.AsFloat32()
		v := float32(value)
		for i := range buf {
			buf[i] = v
		}
	case tensor.F64:
		buf := a.AsFloat64()
		for i := range buf {
			buf[i] = value
		}
	}
	return a, nil
}

// FromFloat32 copies data into a new F32 array of the given shape.
func FromFloat32(data []float32, shape tensor.Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d: %w",
			shape, shape.NumElements(), len(data), tensor.ErrShapeMismatch)
	}
	a, err := NewArray(shape, tensor.F32)
	if err != nil {
		return nil, err
	}
	copy(a.AsFloat32(), data)
	return a, nil
}

// FromFloat64 copies data into a new F64 array of the given shape.
func FromFloat64(data []float64, shape tensor.Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d: %w",
			shape, shape.NumElements(), len(data), tensor.ErrShapeMismatch)
	}
	a, err := NewArray(shape, tensor.F64)
	if err != nil {
		return nil, err
	}
	copy(a.AsFloat64(), data)
	return a, nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() tensor.Shape {
	return a.shape.Clone()
}

// DType returns the array's element type.
func (a *Array) DType() tensor.DType {
	return a.dtype
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the array's dtype is not F32.
func (a *Array) AsFloat32() []float32 {
	if a.dtype != tensor.F32 {
		panic(fmt.Sprintf("array dtype is %s, not f32", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length derived from the shape
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsFloat64 interprets the buffer as []float64.
// Panics if the array's dtype is not F64.
func (a *Array) AsFloat64() []float64 {
	if a.dtype != tensor.F64 {
		panic(fmt.Sprintf("array dtype is %s, not f64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length derived from the shape
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// Clone creates a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]byte, len(a.data))
	copy(data, a.data)
	return &Array{
		data:   data,
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		dtype:  a.dtype,
	}
}

// At returns the element at the multi-index widened to float64.
// The second result is false when the index has the wrong arity or is
// out of range.
func (a *Array) At(idx ...int) (float64, bool) {
	if len(idx) != a.shape.Rank() {
		return 0, false
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, false
		}
		flat += i * a.stride[d]
	}
	switch a.dtype {
	case tensor.F32:
		return float64(a.AsFloat32()[flat]), true
	case tensor.F64:
		return a.AsFloat64()[flat], true
	default:
		return 0, false
	}
}

// CopyFrom overwrites the array's buffer with src's elements.
// src must have the same dtype and shape.
func (a *Array) CopyFrom(src *Array) error {
	if a.dtype != src.dtype {
		return fmt.Errorf("cannot copy %s into %s: %w", src.dtype, a.dtype, tensor.ErrDTypeMismatch)
	}
	if !a.shape.Equal(src.shape) {
		return fmt.Errorf("cannot copy %v into %v: %w", src.shape, a.shape, tensor.ErrShapeMismatch)
	}
	copy(a.data, src.data)
	return nil
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
