// Copyright 2025 The Mantis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/stemmr/Mantis/internal/tensor"
)

// Core types, re-exported from the internal package.
type (
	// Tensor is a handle over a backend-held array paired with the Op
	// record that produced it.
	Tensor = tensor.Tensor

	// Data is the capability surface a backend dispatcher exposes to
	// tensor handles.
	Data = tensor.Data

	// Shape represents the dimensions of an array.
	Shape = tensor.Shape

	// DType identifies the element type of an array.
	DType = tensor.DType

	// Op records one performed operation and its operand handles.
	Op = tensor.Op

	// OpKind identifies the operation that produced a tensor.
	OpKind = tensor.OpKind
)

// Supported element types.
const (
	F32 = tensor.F32
	F64 = tensor.F64
)

// Operation kinds.
const (
	OpNone      = tensor.OpNone
	OpAdd       = tensor.OpAdd
	OpSub       = tensor.OpSub
	OpMul       = tensor.OpMul
	OpDiv       = tensor.OpDiv
	OpMatMul    = tensor.OpMatMul
	OpReLU      = tensor.OpReLU
	OpExp       = tensor.OpExp
	OpSum       = tensor.OpSum
	OpTranspose = tensor.OpTranspose
)

// Error kinds reported by backends and kernels.
var (
	ErrDTypeMismatch      = tensor.ErrDTypeMismatch
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrDimMismatch        = tensor.ErrDimMismatch
	ErrUnsupportedShape   = tensor.ErrUnsupportedShape
	ErrAxisOutOfRange     = tensor.ErrAxisOutOfRange
	ErrBackendMismatch    = tensor.ErrBackendMismatch
	ErrBackendUnsupported = tensor.ErrBackendUnsupported
)

// New creates a leaf tensor over a backend payload.
func New(data Data) *Tensor {
	return tensor.New(data)
}

// Number constrains the target types of GetAs.
type Number = tensor.Number

// GetAs returns the element of d at idx cast to T, following Go numeric
// conversion semantics. The second result is false when the index is out
// of range.
func GetAs[T Number](d Data, idx ...int) (T, bool) {
	return tensor.GetAs[T](d, idx...)
}
