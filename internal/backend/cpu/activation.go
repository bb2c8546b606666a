package cpu

import (
	"fmt"

	"github.com/stemmr/Mantis/internal/tensor"
)

// ReLU computes elementwise max(x, 0).
func (a *Array) ReLU() (*Array, error) {
	out, err := NewArray(a.shape, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("relu: %w", err)
	}
	switch a.dtype {
	case tensor.F32:
		reluFloat32(out.AsFloat32(), a.AsFloat32())
	case tensor.F64:
		reluFloat64(out.AsFloat64(), a.AsFloat64())
	}
	return out, nil
}
