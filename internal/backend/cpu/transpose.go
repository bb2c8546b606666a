package cpu

import (
	"fmt"
)

// Transpose reverses all axes: shape [d0..dn-1] becomes [dn-1..d0].
// Rank 0 and rank 1 arrays transpose to themselves.
func (a *Array) Transpose() (*Array, error) {
	out, err := NewArray(a.shape.Reversed(), a.dtype)
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	rank := a.shape.Rank()
	if rank <= 1 {
		copy(out.data, a.data)
		return out, nil
	}

	// Walk every source element, reverse its coordinates, and place it at
	// the destination offset. Elements move one at a time so the copy is
	// dtype-agnostic.
	elemSize := a.dtype.Size()
	outStrides := out.shape.ComputeStrides()
	n := a.NumElements()
	for i := 0; i < n; i++ {
		rem := i
		outIdx := 0
		for d := 0; d < rank; d++ {
			coord := rem / a.stride[d]
			rem %= a.stride[d]
			outIdx += coord * outStrides[rank-1-d]
		}
		copy(out.data[outIdx*elemSize:(outIdx+1)*elemSize], a.data[i*elemSize:(i+1)*elemSize])
	}
	return out, nil
}
