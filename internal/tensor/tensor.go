package tensor

import "fmt"

// Tensor is a handle over a backend-held array. It pairs a Data payload
// with the Op record that produced it, so a graph layer can walk results
// back to their leaves.
//
// Handles may be shared across goroutines for reading: no operation
// mutates its operands. CopyFrom is the single exception and requires
// exclusive access to the destination handle.
//
// Example:
//
//	a, _ := backend.Ones(tensor.Shape{2, 3}, tensor.F32)
//	x := tensor.New(a)
//	y, err := x.Add(x)
type Tensor struct {
	data Data
	op   Op
}

// New creates a leaf tensor over a backend payload.
func New(data Data) *Tensor {
	return &Tensor{data: data, op: Op{Kind: OpNone}}
}

// newResult wraps an operation result with its provenance record.
func newResult(data Data, op Op) *Tensor {
	return &Tensor{data: data, op: op}
}

// Data returns the backend payload.
func (t *Tensor) Data() Data {
	return t.data
}

// Op returns the record of the operation that produced this tensor.
// Leaf tensors carry an Op with kind OpNone.
func (t *Tensor) Op() Op {
	return t.op
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.data.Shape()
}

// DType returns the tensor's element type.
func (t *Tensor) DType() DType {
	return t.data.DType()
}

// ZerosLike allocates an all-zero tensor of the given shape and dtype on
// the same backend as t.
func (t *Tensor) ZerosLike(shape Shape, dtype DType) (*Tensor, error) {
	out, err := t.data.Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}

// OnesLike allocates an all-one tensor of the given shape and dtype on
// the same backend as t.
func (t *Tensor) OnesLike(shape Shape, dtype DType) (*Tensor, error) {
	out, err := t.data.Ones(shape, dtype)
	if err != nil {
		return nil, err
	}
	return New(out), nil
}

// Add performs elementwise addition.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	out, err := t.data.Add(other.data)
	if err != nil {
		return nil, err
	}
	return newResult(out, NewBinaryOp(OpAdd, t, other)), nil
}

// Sub performs elementwise subtraction.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	out, err := t.data.Sub(other.data)
	if err != nil {
		return nil, err
	}
	return newResult(out, NewBinaryOp(OpSub, t, other)), nil
}

// Mul performs elementwise multiplication.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	out, err := t.data.Mul(other.data)
	if err != nil {
		return nil, err
	}
	return newResult(out, NewBinaryOp(OpMul, t, other)), nil
}

// Div performs elementwise division.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	out, err := t.data.Div(other.data)
	if err != nil {
		return nil, err
	}
	return newResult(out, NewBinaryOp(OpDiv, t, other)), nil
}

// MatMul performs the rank-1 inner product or rank-2 matrix product.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	out, err := t.data.MatMul(other.data)
	if err != nil {
		return nil, err
	}
	return newResult(out, NewBinaryOp(OpMatMul, t, other)), nil
}

// ReLU applies elementwise max(x, 0).
func (t *Tensor) ReLU() (*Tensor, error) {
	out, err := t.data.ReLU()
	if err != nil {
		return nil, err
	}
	return newResult(out, NewUnaryOp(OpReLU, t)), nil
}

// Exp applies the elementwise exponential.
func (t *Tensor) Exp() (*Tensor, error) {
	out, err := t.data.Exp()
	if err != nil {
		return nil, err
	}
	return newResult(out, NewUnaryOp(OpExp, t)), nil
}

// Sum reduces along the given axes. Empty dims reduces everything to a
// shape-[1] total.
func (t *Tensor) Sum(dims ...int) (*Tensor, error) {
	out, err := t.data.Sum(dims)
	if err != nil {
		return nil, err
	}
	return newResult(out, NewSumOp(t, dims)), nil
}

// Transpose reverses all axes.
func (t *Tensor) Transpose() (*Tensor, error) {
	out, err := t.data.Transpose()
	if err != nil {
		return nil, err
	}
	return newResult(out, NewUnaryOp(OpTranspose, t)), nil
}

// At returns the element at the multi-index widened to float64.
// The second result is false when the index is out of range.
func (t *Tensor) At(idx ...int) (float64, bool) {
	return t.data.At(idx...)
}

// CopyFrom overwrites this tensor's buffer with src's elements.
// src must match the destination's dtype and shape.
func (t *Tensor) CopyFrom(src *Tensor) error {
	return t.data.CopyFrom(src.data)
}

// String returns a human-readable representation of the handle.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v (%s)", t.DType(), t.Shape(), t.op.Kind)
}
