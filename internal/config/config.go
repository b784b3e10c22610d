// Package config handles loading application configuration.
//
// Everything can come from the environment alone; a YAML file is optional.
// The file path is taken from (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Environment variables always override values read from the file.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/aanand-mishra/profile-page/internal/types"
	"github.com/ilyakaznacheev/cleanenv"
)

// Defaults applied when a value is unset or empty.
const (
	DefaultPort = "8080"
	DefaultEnv  = "dev"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file and can be overridden by the
// corresponding environment variable (env:"...").
type Config struct {
	// Env selects log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-description:"Log profile: dev, staging or prod (default dev)" validate:"oneof=dev staging prod"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Port is kept as a string so an empty PORT can fall back to the default.
	Port string `yaml:"port" env:"PORT" env-description:"TCP port to listen on (default 8080)" validate:"required,number"`
}

// Addr returns the listen address for net/http, e.g. ":8080".
func (h HTTPServer) Addr() string {
	return ":" + h.Port
}

// Load reads the configuration from the environment and, when path is not
// empty, from the YAML file at path first.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read env: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Env == "" {
		cfg.Env = DefaultEnv
	}

	if err := types.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

// MustLoad resolves the config file path, loads the config and exits the
// process if anything is wrong. flagPath is the value of the --config flag.
func MustLoad(flagPath string) *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = flagPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}

// Description lists the environment variables understood by Config.
func Description() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}

	return text
}
