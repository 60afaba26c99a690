package qsim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the numeric policy and diagnostics settings of a simulator.
type Config struct {
	// Epsilon is the magnitude below which an amplitude counts as zero and is pruned.
	Epsilon float64 `mapstructure:"epsilon"`
	// Seed fixes the measurement sampler. Zero draws a seed from the runtime entropy pool.
	Seed      uint64 `mapstructure:"seed"`
	LogLevel  string `mapstructure:"log_level"`
	DumpIDMap bool   `mapstructure:"dump_id_map"`
}

func NewConfig() *Config {
	return &Config{
		Epsilon:  1e-10,
		LogLevel: "warn",
	}
}

/*
LoadConfig reads the optional configuration file at path on top of the
NewConfig defaults and then applies QSIM_* environment overrides, for
example QSIM_EPSILON or QSIM_LOG_LEVEL. An empty path skips the file.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("epsilon", defaults.Epsilon)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("dump_id_map", defaults.DumpIDMap)

	v.SetEnvPrefix("qsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("qsim: reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("qsim: decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the simulator cannot run with.
func (cfg *Config) Validate() error {
	if cfg.Epsilon <= 0 {
		return errors.New("qsim: epsilon must be positive")
	}
	return nil
}
