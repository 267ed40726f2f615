package app

import "errors"

// Config holds what an App instance needs before any option resolution can
// happen: where the configuration document lives and how to log.
type Config struct {
	ConfigPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the raw CLI-level configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
