// Copyright 2025 The Mantis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public surface of the Mantis array core.
//
// It re-exports the tensor handle, the Data capability interface, shapes,
// dtypes, operation records, and the error kinds backends report.
//
// Example:
//
//	import (
//	    "github.com/stemmr/Mantis/backend"
//	    "github.com/stemmr/Mantis/tensor"
//	)
//
//	func main() {
//	    payload, _ := backend.Ones(tensor.Shape{2, 3}, tensor.F32)
//	    x := tensor.New(payload)
//	    y, _ := x.Add(x)
//	    v, _ := tensor.GetAs[float32](y.Data(), 0, 0) // 2.0
//	    _ = v
//	}
package tensor
