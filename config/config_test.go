package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jton/config"
)

func TestNewConfigMatchesDefaults(t *testing.T) {
	c := config.NewConfig()
	opts := c.Options()

	assert.Equal(t, 8, opts.BoolPackMinLen)
	assert.Equal(t, 2, opts.PrefixMinLen)
	assert.False(t, opts.DisableBinaryPackers)
}

func TestLoadFileOverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jton.yaml")

	content := "disableBinaryPackers: true\nprefixMinLen: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c := config.NewConfig()
	require.NoError(t, c.LoadFile(path))

	opts := c.Options()
	assert.True(t, opts.DisableBinaryPackers)
	assert.Equal(t, 5, opts.PrefixMinLen)
	assert.Equal(t, 8, opts.BoolPackMinLen, "fields absent from the file keep their default")
}

func TestLoadFileMissingPath(t *testing.T) {
	c := config.NewConfig()
	err := c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
