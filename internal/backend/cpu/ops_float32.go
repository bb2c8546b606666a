package cpu

import (
	"math"

	"github.com/stemmr/Mantis/internal/parallel"
)

// Float32 elementwise kernels. All slices share the same length; large
// arrays are chunked across goroutines.

func addFloat32(dst, a, b []float32) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] + b[i]
		}
	}, parallel.DefaultConfig())
}

func subFloat32(dst, a, b []float32) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] - b[i]
		}
	}, parallel.DefaultConfig())
}

func mulFloat32(dst, a, b []float32) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * b[i]
		}
	}, parallel.DefaultConfig())
}

func divFloat32(dst, a, b []float32) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] / b[i]
		}
	}, parallel.DefaultConfig())
}

func reluFloat32(dst, src []float32) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if src[i] > 0 {
				dst[i] = src[i]
			} else {
				dst[i] = 0
			}
		}
	}, parallel.DefaultConfig())
}

func expFloat32(dst, src []float32) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = float32(math.Exp(float64(src[i])))
		}
	}, parallel.DefaultConfig())
}

func sumAllFloat32(src []float32) float32 {
	var sum float32
	for _, v := range src {
		sum += v
	}
	return sum
}
