package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.5, cfg.ConfidenceThreshold)
	assert.Equal(t, 1.0, cfg.StrategyWeights[types.MethodLexicon])
	assert.Equal(t, 1.0, cfg.StrategyWeights[types.MethodAlias])
	assert.Equal(t, 0.7, cfg.StrategyWeights[types.MethodNER])
	assert.Equal(t, 0.6, cfg.StrategyWeights[types.MethodNounChunk])
}

func TestValidate_UnknownStrategy(t *testing.T) {
	cfg := Default()
	cfg.StrategyWeights["telepathy"] = 0.9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestValidate_WeightOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.StrategyWeights[types.MethodNER] = 1.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be in (0, 1]")
}

func TestValidate_ZeroWeightRejected(t *testing.T) {
	cfg := Default()
	cfg.StrategyWeights[types.MethodLexicon] = 0

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingCoreStrategy(t *testing.T) {
	cfg := Default()
	delete(cfg.StrategyWeights, types.MethodAlias)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing weight")
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.ConfidenceThreshold = 1.5

	assert.Error(t, cfg.Validate())
}

func TestWeight_UnknownMethodDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.5, cfg.Weight("custom_strategy"))
	assert.Equal(t, 1.0, cfg.Weight(types.MethodLexicon))
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().ConfidenceThreshold, cfg.ConfidenceThreshold)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "confidence_threshold: 0.7\nenable_pattern: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.ConfidenceThreshold)
	assert.False(t, cfg.EnablePattern)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().MinSectionLength, cfg.MinSectionLength)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confidence_threshold: 0.7\n"), 0o600))
	t.Setenv("SKILLSCAN_CONFIDENCE_THRESHOLD", "0.9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.ConfidenceThreshold)
}

func TestLoad_InvalidFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confidence_threshold: 2.0\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
