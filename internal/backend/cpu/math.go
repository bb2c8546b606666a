package cpu

import (
	"fmt"

	"github.com/stemmr/Mantis/internal/tensor"
)

// Exp computes the elementwise exponential.
// F32 arrays round through float64, matching math.Exp.
func (a *Array) Exp() (*Array, error) {
	out, err := NewArray(a.shape, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("exp: %w", err)
	}
	switch a.dtype {
	case tensor.F32:
		expFloat32(out.AsFloat32(), a.AsFloat32())
	case tensor.F64:
		expFloat64(out.AsFloat64(), a.AsFloat64())
	}
	return out, nil
}
