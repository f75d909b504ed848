package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molnet-ml/molnet/loss"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
dataset_type: spectra
loss_function: wasserstein
spectra:
  activation_threshold: 1e-8
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, loss.DatasetSpectra, cfg.DatasetType)
	assert.Equal(t, "wasserstein", cfg.LossFunction)
	assert.InDelta(t, 1e-8, cfg.Spectra.ActivationThreshold, 1e-12)

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.SpectralOptions(), 1)
}

func TestLoadDefaultsLossFunction(t *testing.T) {
	path := writeConfig(t, "dataset_type: regression\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	name, err := cfg.ResolvedLossName()
	require.NoError(t, err)
	assert.Equal(t, "mse", name)
}

func TestValidateUnsupportedDatasetType(t *testing.T) {
	cfg := &Config{DatasetType: "images"}
	assert.ErrorIs(t, cfg.Validate(), loss.ErrUnsupportedDatasetType)
}

func TestValidateUnsupportedLoss(t *testing.T) {
	cfg := &Config{DatasetType: loss.DatasetRegression, LossFunction: "sid"}

	err := cfg.Validate()
	assert.ErrorIs(t, err, loss.ErrUnsupportedLoss)
	assert.Contains(t, err.Error(), "bounded_mse")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "dataset_type: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSpectralOptionsEmptyWithoutThreshold(t *testing.T) {
	cfg := &Config{DatasetType: loss.DatasetSpectra}
	assert.Empty(t, cfg.SpectralOptions())
}
