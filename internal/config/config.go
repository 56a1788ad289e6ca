package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int     `envconfig:"PORT" default:"8080"`
	AllowedOrigins string  `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	ViewPadding    float64 `envconfig:"VIEW_PADDING" default:"0.5"`
	// Diagnostics surfaces skipped (unresolvable) figure objects in the log.
	// Off by default: an unresolvable object is dropped silently.
	Diagnostics bool `envconfig:"RENDER_DIAGNOSTICS" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
