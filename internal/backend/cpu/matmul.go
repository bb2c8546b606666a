package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/stemmr/Mantis/internal/tensor"
)

// MatMul performs the matrix product of two arrays of equal rank.
//
// Rank combinations:
//   - rank 1 x rank 1: inner product, result shape [1]
//   - rank 2 x rank 2: [M,K] x [K,N] -> [M,N]
//
// All other combinations are rejected. No broadcasting.
func (a *Array) MatMul(b *Array) (*Array, error) {
	if a.dtype != b.dtype {
		return nil, fmt.Errorf("matmul: %s vs %s: %w", a.dtype, b.dtype, tensor.ErrDTypeMismatch)
	}

	ra, rb := a.shape.Rank(), b.shape.Rank()
	if ra != rb || ra < 1 || ra > 2 {
		return nil, fmt.Errorf("matmul: rank %d x rank %d: %w", ra, rb, tensor.ErrUnsupportedShape)
	}

	if ra == 1 {
		return a.dot(b)
	}
	return a.gemm(b)
}

// dot computes the rank-1 inner product, wrapped to shape [1].
func (a *Array) dot(b *Array) (*Array, error) {
	n := a.shape[0]
	if n != b.shape[0] {
		return nil, fmt.Errorf("matmul: vector lengths %d and %d: %w", n, b.shape[0], tensor.ErrDimMismatch)
	}

	out, err := NewArray(tensor.Shape{1}, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("matmul: %w", err)
	}
	if n == 0 {
		return out, nil
	}

	switch a.dtype {
	case tensor.F32:
		out.AsFloat32()[0] = blas32.Dot(
			blas32.Vector{N: n, Inc: 1, Data: a.AsFloat32()},
			blas32.Vector{N: n, Inc: 1, Data: b.AsFloat32()},
		)
	case tensor.F64:
		out.AsFloat64()[0] = blas64.Dot(
			blas64.Vector{N: n, Inc: 1, Data: a.AsFloat64()},
			blas64.Vector{N: n, Inc: 1, Data: b.AsFloat64()},
		)
	}
	return out, nil
}

// gemm computes the rank-2 product [M,K] x [K,N] -> [M,N].
func (a *Array) gemm(b *Array) (*Array, error) {
	m, k := a.shape[0], a.shape[1]
	k2, n := b.shape[0], b.shape[1]
	if k != k2 {
		return nil, fmt.Errorf("matmul: inner dimensions %d and %d: %w", k, k2, tensor.ErrDimMismatch)
	}

	out, err := NewArray(tensor.Shape{m, n}, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("matmul: %w", err)
	}
	// Degenerate extents: the zeroed result is already correct.
	if m == 0 || n == 0 || k == 0 {
		return out, nil
	}

	switch a.dtype {
	case tensor.F32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: a.AsFloat32()},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: b.AsFloat32()},
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: out.AsFloat32()},
		)
	case tensor.F64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: a.AsFloat64()},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: b.AsFloat64()},
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: out.AsFloat64()},
		)
	}
	return out, nil
}
