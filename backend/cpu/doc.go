// Copyright 2026 The MolNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 kernels as hand-written loops
//   - Float64 kernels backed by gonum
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/molnet-ml/molnet/backend/cpu"
//	    "github.com/molnet-ml/molnet/loss"
//	    "github.com/molnet-ml/molnet/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    l, err := loss.Select(loss.DatasetRegression, "mse", backend)
//	    if err != nil {
//	        // invalid configuration
//	    }
//	    _ = l
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Every operation allocates
// its result and never writes through a caller's buffer.
package cpu
