package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingExplicitFileFails(t *testing.T) {
	loader := NewLoader()
	cfg, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	// An explicit path that does not exist resolves to itself and fails to read
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	loader := NewLoader()
	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
output:
  formats: [markdown, json]
analysis:
  max_source_samples: 10
  max_test_samples: 5
`), 0644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"markdown", "json"}, cfg.Output.Formats)
	assert.Equal(t, 10, cfg.Analysis.MaxSourceSamples)
	assert.Equal(t, 5, cfg.Analysis.MaxTestSamples)
	// Untouched sections keep defaults
	assert.Equal(t, "repo-analyzer", cfg.Agent.Name)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("RA_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: ${RA_LEVEL}
output:
  output_dir: ${RA_OUT:-reports}
`), 0644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "reports", cfg.Output.OutputDir)
}
