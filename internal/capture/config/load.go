package config

import "yolofeed/internal/configload"

// LoadConfig loads configuration/capture/base.yaml, overlays the active
// environment file and APP_-prefixed env vars, and validates the
// result.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()
	if err := configload.LoadLayered(dir, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
