package cpu

import (
	"fmt"

	"github.com/stemmr/Mantis/internal/tensor"
)

// Add performs elementwise addition. Operands must share dtype and shape.
func (a *Array) Add(b *Array) (*Array, error) {
	out, err := a.binaryResult(b, "add")
	if err != nil {
		return nil, err
	}
	switch a.dtype {
	case tensor.F32:
		addFloat32(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.F64:
		addFloat64(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}
	return out, nil
}

// Sub performs elementwise subtraction. Operands must share dtype and shape.
func (a *Array) Sub(b *Array) (*Array, error) {
	out, err := a.binaryResult(b, "sub")
	if err != nil {
		return nil, err
	}
	switch a.dtype {
	case tensor.F32:
		subFloat32(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.F64:
		subFloat64(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}
	return out, nil
}

// Mul performs elementwise multiplication. Operands must share dtype and shape.
func (a *Array) Mul(b *Array) (*Array, error) {
	out, err := a.binaryResult(b, "mul")
	if err != nil {
		return nil, err
	}
	switch a.dtype {
	case tensor.F32:
		mulFloat32(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.F64:
		mulFloat64(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}
	return out, nil
}

// Div performs elementwise division. Operands must share dtype and shape.
// Division by zero follows IEEE 754 (Inf/NaN), as in the elementwise kernels.
func (a *Array) Div(b *Array) (*Array, error) {
	out, err := a.binaryResult(b, "div")
	if err != nil {
		return nil, err
	}
	switch a.dtype {
	case tensor.F32:
		divFloat32(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.F64:
		divFloat64(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}
	return out, nil
}

// binaryResult validates the elementwise preconditions and allocates the
// result array.
func (a *Array) binaryResult(b *Array, opName string) (*Array, error) {
	if a.dtype != b.dtype {
		return nil, fmt.Errorf("%s: %s vs %s: %w", opName, a.dtype, b.dtype, tensor.ErrDTypeMismatch)
	}
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%s: %v vs %v: %w", opName, a.shape, b.shape, tensor.ErrShapeMismatch)
	}
	out, err := NewArray(a.shape, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}
	return out, nil
}
