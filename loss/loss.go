// Copyright 2026 The MolNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package loss

import (
	"github.com/molnet-ml/molnet/internal/loss"
	"github.com/molnet-ml/molnet/internal/tensor"
)

// Type aliases for the public API

// Loss computes an unreduced per-element loss for a batch.
type Loss[B tensor.Backend] = loss.Loss[B]

// Batch carries one training batch's tensors.
type Batch[B tensor.Backend] = loss.Batch[B]

// DatasetType identifies what kind of targets a training run predicts.
type DatasetType = loss.DatasetType

// Recognized dataset types.
const (
	DatasetRegression     DatasetType = loss.DatasetRegression
	DatasetClassification DatasetType = loss.DatasetClassification
	DatasetMulticlass     DatasetType = loss.DatasetMulticlass
	DatasetSpectra        DatasetType = loss.DatasetSpectra
)

// Registry maps (dataset type, loss name) pairs to loss constructors.
type Registry[B tensor.Backend] = loss.Registry[B]

// Constructor builds a loss on a backend.
type Constructor[B tensor.Backend] = loss.Constructor[B]

// Selector errors.
var (
	ErrUnsupportedDatasetType = loss.ErrUnsupportedDatasetType
	ErrUnsupportedLoss        = loss.ErrUnsupportedLoss
	ErrNoDefaultLoss          = loss.ErrNoDefaultLoss
)

// Select resolves a (dataset type, loss name) pair against the standard
// registry and constructs the loss on the given backend. An empty name
// selects the dataset type's default.
func Select[B tensor.Backend](dataset DatasetType, name string, backend B) (Loss[B], error) {
	return loss.Select(dataset, name, backend)
}

// NewRegistry creates an empty registry for custom loss tables.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	return loss.NewRegistry[B]()
}

// DefaultRegistry builds the standard loss table, including the legacy
// name aliases.
func DefaultRegistry[B tensor.Backend]() *Registry[B] {
	return loss.DefaultRegistry[B]()
}

// Concrete losses, for direct use outside the selector.

// MSELoss is elementwise squared error.
type MSELoss[B tensor.Backend] = loss.MSELoss[B]

// BoundedMSELoss is squared error for censored regression targets.
type BoundedMSELoss[B tensor.Backend] = loss.BoundedMSELoss[B]

// BCELoss is binary cross-entropy over raw logits.
type BCELoss[B tensor.Backend] = loss.BCELoss[B]

// MCCLoss is the per-task binary soft-MCC loss.
type MCCLoss[B tensor.Backend] = loss.MCCLoss[B]

// F1Loss is the per-task binary soft-F1 loss (not registered).
type F1Loss[B tensor.Backend] = loss.F1Loss[B]

// CrossEntropyLoss is per-sample categorical cross-entropy.
type CrossEntropyLoss[B tensor.Backend] = loss.CrossEntropyLoss[B]

// MCCMulticlassLoss is the batch-global multiclass soft-MCC loss.
type MCCMulticlassLoss[B tensor.Backend] = loss.MCCMulticlassLoss[B]

// F1MulticlassLoss is the batch-global multiclass soft-F1 loss (not
// registered).
type F1MulticlassLoss[B tensor.Backend] = loss.F1MulticlassLoss[B]

// SIDLoss is the spectral information divergence loss.
type SIDLoss[B tensor.Backend] = loss.SIDLoss[B]

// WassersteinLoss is the cumulative-distribution distance loss.
type WassersteinLoss[B tensor.Backend] = loss.WassersteinLoss[B]

// SpectralOption configures a spectral loss.
type SpectralOption = loss.SpectralOption

// WithThreshold clamps model spectrum values below threshold before
// normalization.
func WithThreshold(threshold float32) SpectralOption {
	return loss.WithThreshold(threshold)
}

// NewMSELoss creates a mean-squared-error loss.
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] { return loss.NewMSELoss(backend) }

// NewBoundedMSELoss creates a bounded MSE loss.
func NewBoundedMSELoss[B tensor.Backend](backend B) *BoundedMSELoss[B] {
	return loss.NewBoundedMSELoss(backend)
}

// NewBCELoss creates a binary cross-entropy loss over logits.
func NewBCELoss[B tensor.Backend](backend B) *BCELoss[B] { return loss.NewBCELoss(backend) }

// NewMCCLoss creates a binary soft-MCC loss.
func NewMCCLoss[B tensor.Backend](backend B) *MCCLoss[B] { return loss.NewMCCLoss(backend) }

// NewF1Loss creates a binary soft-F1 loss.
func NewF1Loss[B tensor.Backend](backend B) *F1Loss[B] { return loss.NewF1Loss(backend) }

// NewCrossEntropyLoss creates a multiclass cross-entropy loss.
func NewCrossEntropyLoss[B tensor.Backend](backend B) *CrossEntropyLoss[B] {
	return loss.NewCrossEntropyLoss(backend)
}

// NewMCCMulticlassLoss creates a multiclass soft-MCC loss.
func NewMCCMulticlassLoss[B tensor.Backend](backend B) *MCCMulticlassLoss[B] {
	return loss.NewMCCMulticlassLoss(backend)
}

// NewF1MulticlassLoss creates a multiclass soft-F1 loss.
func NewF1MulticlassLoss[B tensor.Backend](backend B) *F1MulticlassLoss[B] {
	return loss.NewF1MulticlassLoss(backend)
}

// NewSIDLoss creates a SID loss.
func NewSIDLoss[B tensor.Backend](backend B, opts ...SpectralOption) *SIDLoss[B] {
	return loss.NewSIDLoss(backend, opts...)
}

// NewWassersteinLoss creates a Wasserstein loss.
func NewWassersteinLoss[B tensor.Backend](backend B, opts ...SpectralOption) *WassersteinLoss[B] {
	return loss.NewWassersteinLoss(backend, opts...)
}
