package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, string(domain.UnitMillions), cfg.DefaultUnit)
	assert.True(t, cfg.DefaultComparison)

	prefs := cfg.DisplayPreferences()
	assert.Equal(t, domain.UnitMillions, prefs.Unit)
	assert.True(t, prefs.ShowComparison)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9191\"\ndefault_unit: billions\ndefault_comparison: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, string(domain.UnitBillions), cfg.DefaultUnit)
	assert.False(t, cfg.DefaultComparison)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoad_InvalidUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_unit: parsecs\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
