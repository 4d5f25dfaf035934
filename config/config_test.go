package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := &Config{
		ModFolder:    "/games/fs22/mods",
		WindowWidth:  1280,
		WindowHeight: 800,
	}
	require.NoError(t, want.Save(dir))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	require.NoError(t, Default().Save(dir))

	_, err := os.Stat(filepath.Join(dir, "modcheck.yaml"))
	assert.NoError(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mod_folder: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
