package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/config"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := config.NewService()

	want := &config.Config{
		Version:             1,
		DatasetURL:          "https://example.test/countries.json",
		FetchTimeoutSeconds: 10,
		UISettings: config.UISettings{
			ShowRegion:  true,
			ShowCapital: false,
		},
	}

	require.NoError(t, svc.SaveToPath(want, path))

	got, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFromMissingPathFails(t *testing.T) {
	t.Parallel()

	svc := config.NewService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestPartialConfigGetsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	svc := config.NewService()
	got, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDatasetURL, got.DatasetURL)
	assert.Positive(t, got.FetchTimeoutSeconds)
}

func TestMalformedConfigFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [not toml"), 0644))

	svc := config.NewService()
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, config.DefaultDatasetURL, cfg.DatasetURL)
	assert.Positive(t, cfg.FetchTimeoutSeconds)
	assert.True(t, cfg.UISettings.ShowRegion)
	assert.True(t, cfg.UISettings.ShowCapital)
}
