// Package tensor provides the core types of the Mantis numerical array
// library: element types, shapes, the Data capability surface implemented
// by compute backends, the Op record that captures operation provenance,
// and the Tensor handle that ties them together.
//
// Architecture:
//   - DType/Shape: closed element-type set and n-dimensional extents
//   - Data: the contract a backend dispatcher exposes to tensor handles
//   - Op: an inert record of one performed operation and its operands,
//     consumed by a graph layer above this core
//   - Tensor: a handle over a Data payload; every operation yields a
//     fresh handle carrying the Op that produced it
//
// All operations follow a single result-or-error discipline. Operands are
// never mutated; results are freshly allocated by the backend. The only
// mutating entry point is CopyFrom, which requires matching dtype and
// shape and exclusive access to the destination.
package tensor
