package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntime_Defaults(t *testing.T) {
	for _, k := range []string{"MEW_STAGE", "MEW_RECORD", "MEW_LOG_LEVEL", "MEW_CONFIG_DIR", "MEW_SEED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadRuntime()
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Stage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Empty(t, cfg.Record)
}

func TestLoadRuntime_FromEnv(t *testing.T) {
	t.Setenv("MEW_STAGE", "caves")
	t.Setenv("MEW_RECORD", "run.json")
	t.Setenv("MEW_LOG_LEVEL", "debug")
	t.Setenv("MEW_CONFIG_DIR", "/tmp/configs")
	t.Setenv("MEW_SEED", "42")

	cfg, err := LoadRuntime()
	require.NoError(t, err)
	assert.Equal(t, "caves", cfg.Stage)
	assert.Equal(t, "run.json", cfg.Record)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/configs", cfg.ConfigDir)
	assert.Equal(t, int64(42), cfg.Seed)
}
