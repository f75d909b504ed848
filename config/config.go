// Copyright 2026 The MolNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config loads and validates training-run configuration for the
// loss layer: the (dataset type, loss function) pair the selector
// resolves at setup, plus loss-specific options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/molnet-ml/molnet/backend/cpu"
	"github.com/molnet-ml/molnet/loss"
)

// SpectraConfig holds options specific to spectral losses.
type SpectraConfig struct {
	// ActivationThreshold clamps model spectrum values below it before
	// normalization. Zero means no clamping.
	ActivationThreshold float32 `yaml:"activation_threshold"`
}

// Config is a training-run configuration.
//
// Example:
//
//	dataset_type: spectra
//	loss_function: wasserstein
//	spectra:
//	  activation_threshold: 1e-8
type Config struct {
	// DatasetType selects the loss registry section: regression,
	// classification, multiclass or spectra.
	DatasetType loss.DatasetType `yaml:"dataset_type"`

	// LossFunction names the loss within the dataset type. Empty selects
	// the dataset type's default.
	LossFunction string `yaml:"loss_function"`

	// Spectra configures spectral losses. Ignored for other dataset types.
	Spectra SpectraConfig `yaml:"spectra"`
}

// Load reads and parses a YAML configuration file. The result is not
// yet validated; call Validate before using it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate resolves the configured (dataset type, loss function) pair
// against the standard registry, returning the selector's errors
// verbatim: ErrUnsupportedDatasetType, ErrUnsupportedLoss or
// ErrNoDefaultLoss.
func (c *Config) Validate() error {
	_, err := loss.Select(c.DatasetType, c.LossFunction, cpu.New())
	return err
}

// ResolvedLossName returns the registry name of the loss this
// configuration selects, after defaults are applied.
func (c *Config) ResolvedLossName() (string, error) {
	l, err := loss.Select(c.DatasetType, c.LossFunction, cpu.New())
	if err != nil {
		return "", err
	}
	return l.Name(), nil
}

// SpectralOptions translates the spectra section into loss options.
func (c *Config) SpectralOptions() []loss.SpectralOption {
	if c.Spectra.ActivationThreshold == 0 {
		return nil
	}
	return []loss.SpectralOption{loss.WithThreshold(c.Spectra.ActivationThreshold)}
}
