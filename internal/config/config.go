// Package config reads ftracker settings from the environment.
// Command line flags override whatever is loaded here.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel        string        `envconfig:"FTRACKER_LOG_LEVEL" default:"info"`
	Address         string        `envconfig:"FTRACKER_ADDRESS" default:"localhost:8080"`
	PackagesFile    string        `envconfig:"FTRACKER_PACKAGES_FILE" default:""`
	MaxConnections  int           `envconfig:"FTRACKER_MAX_CONNECTIONS" default:"100"`
	ShutdownTimeout time.Duration `envconfig:"FTRACKER_SHUTDOWN_TIMEOUT" default:"5s"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
