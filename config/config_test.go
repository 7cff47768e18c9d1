package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samalone/Hasami/config"
	"github.com/samalone/Hasami/errors"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Base)
	assert.Equal(t, 10, cfg.Retain)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hasami.toml")
	require.NoError(t, os.WriteFile(path, []byte("base = 10\nretain = 3\n"), 0o644))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Base)
	assert.Equal(t, 3, cfg.Retain)
}

func TestLoadFromFilePartialFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hasami.toml")
	require.NoError(t, os.WriteFile(path, []byte("retain = 5\n"), 0o644))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Base, "unset keys keep their defaults")
	assert.Equal(t, 5, cfg.Retain)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	v := viper.New()
	v.Set("base", 1)
	v.Set("retain", 10)
	_, err := config.LoadWithViper(v)
	assert.True(t, errors.Is(err, errors.ErrInvalidBase))

	v = viper.New()
	v.Set("base", 2)
	v.Set("retain", 0)
	_, err = config.LoadWithViper(v)
	assert.True(t, errors.Is(err, errors.ErrInvalidRetainCount))
}
