package cpu

import (
	"fmt"
	"sort"

	"github.com/stemmr/Mantis/internal/tensor"
)

// Sum reduces the array along the given axes.
//
// Empty dims means a full reduction: the result has shape [1] and holds
// the total. Otherwise the axes are sorted ascending and reduced one at a
// time. Each reduction removes an axis and renumbers the rest, so the
// i-th sorted axis is shifted down by i (saturating at 0) before it is
// applied. Reducing every axis also yields shape [1] rather than a
// rank-0 result.
func (a *Array) Sum(dims []int) (*Array, error) {
	rank := a.shape.Rank()
	for _, d := range dims {
		if d < 0 || d >= rank {
			return nil, fmt.Errorf("sum: axis %d for rank %d: %w", d, rank, tensor.ErrAxisOutOfRange)
		}
	}

	if len(dims) == 0 {
		return a.sumAll()
	}

	axes := append([]int(nil), dims...)
	sort.Ints(axes)

	cur := a
	for i, axis := range axes {
		shifted := axis - i
		if shifted < 0 {
			shifted = 0
		}
		cur = cur.sumAxis(shifted)
	}
	if cur.shape.Rank() == 0 {
		cur.shape = tensor.Shape{1}
		cur.stride = []int{1}
	}
	return cur, nil
}

// sumAll reduces every element into a shape-[1] array.
func (a *Array) sumAll() (*Array, error) {
	out, err := NewArray(tensor.Shape{1}, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}
	switch a.dtype {
	case tensor.F32:
		out.AsFloat32()[0] = sumAllFloat32(a.AsFloat32())
	case tensor.F64:
		out.AsFloat64()[0] = sumAllFloat64(a.AsFloat64())
	}
	return out, nil
}

// sumAxis collapses one axis. The axis must be in range.
func (a *Array) sumAxis(axis int) *Array {
	outShape := a.shape.WithoutAxis(axis)
	out, err := NewArray(outShape, a.dtype)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err)) // shape derived from a valid one
	}

	switch a.dtype {
	case tensor.F32:
		sumAxisFloat32(out.AsFloat32(), a.AsFloat32(), a.shape, axis)
	case tensor.F64:
		sumAxisFloat64(out.AsFloat64(), a.AsFloat64(), a.shape, axis)
	}
	return out
}

// sumAxisFloat32 accumulates src into dst with the reduced axis removed.
// Row-major layout lets the flat input index split into the block before
// the axis, the axis coordinate, and the block after it.
func sumAxisFloat32(dst, src []float32, shape tensor.Shape, axis int) {
	outer := 1
	for d := 0; d < axis; d++ {
		outer *= shape[d]
	}
	axisSize := shape[axis]
	inner := 1
	for d := axis + 1; d < len(shape); d++ {
		inner *= shape[d]
	}

	for o := 0; o < outer; o++ {
		for x := 0; x < axisSize; x++ {
			base := (o*axisSize + x) * inner
			outBase := o * inner
			for in := 0; in < inner; in++ {
				dst[outBase+in] += src[base+in]
			}
		}
	}
}

func sumAxisFloat64(dst, src []float64, shape tensor.Shape, axis int) {
	outer := 1
	for d := 0; d < axis; d++ {
		outer *= shape[d]
	}
	axisSize := shape[axis]
	inner := 1
	for d := axis + 1; d < len(shape); d++ {
		inner *= shape[d]
	}

	for o := 0; o < outer; o++ {
		for x := 0; x < axisSize; x++ {
			base := (o*axisSize + x) * inner
			outBase := o * inner
			for in := 0; in < inner; in++ {
				dst[outBase+in] += src[base+in]
			}
		}
	}
}
