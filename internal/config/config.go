// Package config loads the w2nd service configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	HTML   HTMLConfig   `yaml:"html"`
}

// ServerConfig configures the HTTP listener and its middleware.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	BodyLimit      string   `yaml:"body_limit"` // e.g. "2M"
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	CORSOrigins    []string `yaml:"cors_origins,omitempty"`
}

// HTMLConfig sets defaults for the HTML endpoint.
type HTMLConfig struct {
	Sanitize bool `yaml:"sanitize"`
}

// Timeout is the per-request timeout.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8081",
			BodyLimit:      "2M",
			TimeoutSeconds: 30,
			CORSOrigins:    []string{"http://localhost:4200"},
		},
		HTML: HTMLConfig{Sanitize: true},
	}
}

// Load reads the YAML file at path over the defaults. An empty path uses
// the defaults alone. Environment variables in the file (${VAR}) are
// expanded, then PORT and CORS_ORIGINS override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for o := range strings.SplitSeq(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.Server.CORSOrigins = append(cfg.Server.CORSOrigins, o)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is empty"))
	}
	if c.Server.BodyLimit == "" {
		errs = append(errs, errors.New("server.body_limit is empty"))
	}
	if c.Server.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("server.timeout_seconds must be positive, got %d", c.Server.TimeoutSeconds))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
