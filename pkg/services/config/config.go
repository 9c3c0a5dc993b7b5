package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	defaultTimeout = 60
)

// Config holds every setting the client needs. The base URL is resolved
// once here and injected into whichever component performs network
// calls; nothing reads ambient environment at call sites.
type Config struct {
	BaseURL        string `mapstructure:"base_url"`
	Language       string `mapstructure:"language"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from an optional YAML file plus FINHEALTH_*
// environment overrides. An empty path falls back to `finhealth.yaml`
// in the working directory, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("language", "en")
	v.SetDefault("timeout_seconds", defaultTimeout)

	v.SetEnvPrefix("FINHEALTH")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("finhealth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
