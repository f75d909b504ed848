// Copyright 2026 The MolNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the molnet
// loss layer.
//
// # Overview
//
// Tensors carry the model outputs, targets, masks and weights that loss
// functions consume. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Device abstraction, so auxiliary tensors are allocated in the same
//     memory space as the inputs they patch
//
// # Basic Usage
//
//	import (
//	    "github.com/molnet-ml/molnet/backend/cpu"
//	    "github.com/molnet-ml/molnet/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    preds, _ := tensor.FromSlice([]float32{0.5, 2}, tensor.Shape{1, 2}, backend)
//	    targets := tensor.Ones[float32](tensor.Shape{1, 2}, backend)
//
//	    diff := preds.Sub(targets)
//	    squared := diff.Mul(diff)
//	}
//
// # Supported Data Types
//
// The DType constraint covers what the loss layer needs:
//   - float32, float64 (predictions, targets, weights)
//   - int32 (multiclass class indices)
//   - bool (validity masks and bound indicators)
//
// # Broadcasting
//
// Operations follow NumPy broadcasting rules, which is how a (batch, 1)
// sample-weight column combines with a (batch, tasks) prediction matrix:
//
//	weights, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2, 1}, backend)
//	weighted := preds.Mul(weights) // (2, tasks)
//
// # Numerical Policy
//
// Division, Log and Sqrt follow IEEE-754: dividing by a zero row sum or
// taking the log of zero yields -Inf/NaN instead of an error or panic.
// The loss layer depends on this propagation for degenerate inputs.
package tensor
