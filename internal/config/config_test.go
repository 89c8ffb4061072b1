package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("EXAMDESK_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 450, cfg.Rates.Morning)
	assert.Equal(t, 750, cfg.Rates.Combined)
	assert.Equal(t, 5000, cfg.Rates.EYPersonnel)
	assert.Equal(t, 1, cfg.Venues.DefaultCapacity)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXAMDESK_DATA_DIR", dir)

	data := []byte("[rates]\ncombined = 900\n\n[venues]\ndefault_capacity = 2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), data, 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 900, cfg.Rates.Combined)
	assert.Equal(t, 2, cfg.Venues.DefaultCapacity)
	// Untouched keys keep their defaults.
	assert.Equal(t, 450, cfg.Rates.Morning)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXAMDESK_DATA_DIR", t.TempDir())
	t.Setenv("EXAMDESK_COMBINED_RATE", "825")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 825, cfg.Rates.Combined)
}

func TestBackupDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXAMDESK_DATA_DIR", dir)

	cfg := DefaultConfig()
	got, err := cfg.BackupDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backups"), got)

	cfg.Backup.Dir = "/tmp/elsewhere"
	got, err = cfg.BackupDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", got)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXAMDESK_DATA_DIR", dir)

	path, err := WriteDefault()
	require.NoError(t, err)
	assert.FileExists(t, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Rates, cfg.Rates)
}
