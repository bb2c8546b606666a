package tensor

// Data is the capability surface a backend dispatcher exposes to tensor
// handles. Implementations route each call to a backend kernel and must
// preserve the kernel contracts: results are freshly allocated, operands
// are never mutated, and every result keeps its operands' dtype.
//
// Factories (Zeros, Ones, Full) allocate on the same backend as the
// receiver, so callers never name a backend explicitly.
//
// Implementations:
//   - backend.Data: dispatches to the CPU kernels (Metal tag reserved)
//   - mockData: naive in-package implementation for handle tests
type Data interface {
	// Factories. The receiver's backend tag selects where the new array
	// is allocated.
	Zeros(shape Shape, dtype DType) (Data, error)
	Ones(shape Shape, dtype DType) (Data, error)
	Full(value float64, shape Shape, dtype DType) (Data, error)

	// Elementwise binary operations. Operands must share dtype and shape.
	Add(rhs Data) (Data, error)
	Sub(rhs Data) (Data, error)
	Mul(rhs Data) (Data, error)
	Div(rhs Data) (Data, error)

	// MatMul is the rank-1 inner product (result shape [1]) or rank-2
	// GEMM ([M,K] x [K,N] -> [M,N]). Other rank pairings are rejected.
	MatMul(rhs Data) (Data, error)

	// Elementwise unary operations.
	ReLU() (Data, error)
	Exp() (Data, error)

	// Sum reduces along the given axes. Empty dims means a full
	// reduction with result shape [1].
	Sum(dims []int) (Data, error)

	// Transpose reverses all axes.
	Transpose() (Data, error)

	// At returns the element at the multi-index, widened to float64.
	// The second result is false when the index is out of range.
	At(idx ...int) (float64, bool)

	// CopyFrom overwrites the receiver's buffer with src's elements.
	// src must match the receiver's dtype and shape. The caller must
	// hold exclusive access to the destination.
	CopyFrom(src Data) error

	Shape() Shape
	DType() DType
}

// Number constrains the target types of GetAs.
type Number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~int
}

// GetAs returns the element of d at idx cast to T. Casting follows Go
// conversion semantics: widening is exact, narrowing to integer targets
// truncates toward zero. The second result is false when the index is
// out of range.
func GetAs[T Number](d Data, idx ...int) (T, bool) {
	v, ok := d.At(idx...)
	if !ok {
		var zero T
		return zero, false
	}
	return T(v), true
}
