package embedded

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings that embedded deployments typically want
// to override without recompiling.
type Config struct {
	Addr        string        `env:"ADDR" envDefault:":80"`
	Name        string        `env:"NAME" envDefault:"HttpServer"`
	RefreshRate time.Duration `env:"REFRESH_RATE" envDefault:"10ms"`
}

// ConfigFromEnv reads the configuration from GOOHTTP_-prefixed environment
// variables: GOOHTTP_ADDR, GOOHTTP_NAME, GOOHTTP_REFRESH_RATE.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "GOOHTTP_"}); err != nil {
		return cfg, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// BindConfig creates a server from a Config. Extra options apply on top and
// win over the config values.
func BindConfig(cfg Config, options ...ServerOption) *Server {
	opts := []ServerOption{WithName(cfg.Name), WithRefreshRate(cfg.RefreshRate)}
	return Bind(cfg.Addr, append(opts, options...)...)
}
