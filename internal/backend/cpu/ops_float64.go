package cpu

import (
	"math"

	"github.com/stemmr/Mantis/internal/parallel"
)

// Float64 elementwise kernels, mirroring the float32 set.

func addFloat64(dst, a, b []float64) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] + b[i]
		}
	}, parallel.DefaultConfig())
}

func subFloat64(dst, a, b []float64) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] - b[i]
		}
	}, parallel.DefaultConfig())
}

func mulFloat64(dst, a, b []float64) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * b[i]
		}
	}, parallel.DefaultConfig())
}

func divFloat64(dst, a, b []float64) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] / b[i]
		}
	}, parallel.DefaultConfig())
}

func reluFloat64(dst, src []float64) {
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

func expFloat64(dst, src []float64) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = math.Exp(src[i])
		}
	}, parallel.DefaultConfig())
}

func sumAllFloat64(src []float64) float64 {
	var sum float64
	for _, v := range src {
		sum += v
	}
	return sum
}
