// Copyright 2025 The Mantis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend is the public surface of the Mantis backend dispatcher.
//
// Data wraps a backend-specific array behind the tensor.Data capability
// surface. The CPU variant is fully wired; the Metal tag is reserved and
// rejects every operation until kernels exist for it.
package backend

import (
	"github.com/stemmr/Mantis/internal/backend"
	"github.com/stemmr/Mantis/internal/backend/cpu"
	"github.com/stemmr/Mantis/tensor"
)

type (
	// Data is the backend-dispatched payload behind a tensor handle.
	Data = backend.Data

	// Device identifies the execution target of a Data value.
	Device = backend.Device

	// Array is the CPU-resident n-dimensional array.
	Array = cpu.Array
)

// Known devices.
const (
	CPU   = backend.CPU
	Metal = backend.Metal
)

// Compile-time check that Data implements the capability surface.
var _ tensor.Data = (*Data)(nil)

// Zeros allocates an all-zero CPU payload.
func Zeros(shape tensor.Shape, dtype tensor.DType) (*Data, error) {
	return backend.Zeros(shape, dtype)
}

// Ones allocates an all-one CPU payload.
func Ones(shape tensor.Shape, dtype tensor.DType) (*Data, error) {
	return backend.Ones(shape, dtype)
}

// Full allocates a CPU payload with every element set to value.
// The value narrows to float32 for F32 payloads.
func Full(value float64, shape tensor.Shape, dtype tensor.DType) (*Data, error) {
	return backend.Full(value, shape, dtype)
}

// FromFloat32 copies data into a new F32 CPU payload.
func FromFloat32(data []float32, shape tensor.Shape) (*Data, error) {
	return backend.FromFloat32(data, shape)
}

// FromFloat64 copies data into a new F64 CPU payload.
func FromFloat64(data []float64, shape tensor.Shape) (*Data, error) {
	return backend.FromFloat64(data, shape)
}

// NewCPU wraps an existing CPU array.
func NewCPU(arr *Array) *Data {
	return backend.NewCPU(arr)
}

// NewMetal returns the reserved Metal variant.
func NewMetal() *Data {
	return backend.NewMetal()
}
