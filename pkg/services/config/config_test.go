package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finhealth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: http://demo.internal:9000\nlanguage: hi\ntimeout_seconds: 15\n",
	), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://demo.internal:9000", cfg.BaseURL)
	assert.Equal(t, "hi", cfg.Language)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FINHEALTH_BASE_URL", "http://10.0.0.5:8000")
	t.Setenv("FINHEALTH_LANGUAGE", "hi")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.BaseURL)
	assert.Equal(t, "hi", cfg.Language)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

// chdirTemp keeps implicit-path loads from picking up a stray
// finhealth.yaml in the repository.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
