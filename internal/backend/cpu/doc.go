// Package cpu implements the reference in-memory array and its numerical
// kernels for each supported dtype.
//
// Array owns a contiguous row-major buffer and a shape; the active dtype
// is fixed at creation. Kernels never mutate their operands: every result
// is freshly allocated. CopyFrom is the only mutating operation and
// requires matching dtype and shape.
//
// Rank-2 matmul and the rank-1 inner product run on gonum BLAS; the
// remaining kernels are flat loops, chunked across goroutines for large
// arrays.
package cpu
