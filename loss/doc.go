// Copyright 2026 The MolNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss provides the public API for the molnet loss layer.
//
// # Overview
//
// The loss layer turns model outputs and targets into unreduced
// per-element training losses. The training loop resolves one Loss at
// setup via Select and calls it once per batch; reduction (weighted sum
// or mean) and gradient computation are the caller's job.
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
//	    l, err := loss.Select(loss.DatasetSpectra, "wasserstein", backend)
//	    if err != nil {
//	        // configuration error: unsupported dataset type or loss name
//	    }
//
//	    out := l.Compute(&loss.Batch[*cpu.Backend]{
//	        Predictions: modelSpectra,
//	        Targets:     targetSpectra,
//	        Mask:        mask,
//	    })
//	    _ = out // (batch, spectrum_length), reduce as needed
//	}
//
// # Dataset Types and Losses
//
//	regression:     mse (default), bounded_mse
//	classification: binary_cross_entropy (default), cross_entropy, mcc
//	multiclass:     cross_entropy (default), mcc
//	spectra:        sid (default), spectra, wasserstein
//
// The soft F1 losses exist as concrete types but are intentionally not
// registered; MCC behaves better on unbalanced datasets.
//
// # Numerical Policy
//
// There is no epsilon stabilization anywhere. Zero denominators and
// degenerate confusion matrices propagate NaN/Inf per IEEE-754 instead
// of raising errors.
package loss
