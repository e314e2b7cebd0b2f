package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := loadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.StorePath)
	assert.False(t, cfg.SeedEnabled)
	assert.Equal(t, "auto", cfg.Color)
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `
[store]
path = "/tmp/custom/bookmarks.xml"

[seed]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom/bookmarks.xml", cfg.StorePath)
	assert.True(t, cfg.SeedEnabled)
	assert.Equal(t, "auto", cfg.Color, "untouched keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[store]\npath = \"/from/file.xml\"\n"), 0644))

	t.Setenv("MARKS_STORE_PATH", "/from/env.xml")
	t.Setenv("MARKS_OUTPUT_COLOR", "never")

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.xml", cfg.StorePath)
	assert.Equal(t, "never", cfg.Color)
}

func TestMissingFileIsIgnored(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[store\n"), 0644))

	_, err := loadFrom(path)
	require.Error(t, err)
}
