package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// RuntimeConfig holds process-level settings read from the environment.
// Command-line flags take precedence over these values.
type RuntimeConfig struct {
	Stage     string `config:"MEW_STAGE"`
	Record    string `config:"MEW_RECORD"`
	LogLevel  string `config:"MEW_LOG_LEVEL"`
	ConfigDir string `config:"MEW_CONFIG_DIR"` // empty means use the embedded configs
	Seed      int64  `config:"MEW_SEED"`
}

// DefaultRuntime returns the settings used when nothing is set in the environment
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		Stage:    "demo",
		LogLevel: "info",
		Seed:     1,
	}
}

// LoadRuntime overlays MEW_* environment variables onto the defaults
func LoadRuntime() (RuntimeConfig, error) {
	cfg := DefaultRuntime()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to read environment config")
	}
	return cfg, nil
}
