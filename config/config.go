// Package config loads cgraph CLI settings from defaults, an optional YAML
// file and the environment, in that order, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Graphviz   GraphvizConfig   `yaml:"graphviz"`
}

// EvaluationConfig selects the evaluation policy and optimisation.
type EvaluationConfig struct {
	Policy string `yaml:"policy" validate:"required,oneof=eager topological naive lazy memo"`
	Fold   bool   `yaml:"fold"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=text json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen" validate:"omitempty,hostname_port"`
}

// GraphvizConfig selects the renderer used by `cgraph dot --render`.
type GraphvizConfig struct {
	Program string `yaml:"program" validate:"required,oneof=dot neato twopi circo fdp"`
	Format  string `yaml:"format" validate:"required,oneof=png svg pdf jpg"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Evaluation: EvaluationConfig{Policy: "lazy", Fold: false},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
		Metrics:    MetricsConfig{Enabled: false, Listen: "127.0.0.1:9233"},
		Graphviz:   GraphvizConfig{Program: "dot", Format: "png"},
	}
}

var validate = validator.New()

// Validate checks the struct tags and that enabled metrics have an address.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		return fmt.Errorf("%w: metrics enabled without a listen address", ErrInvalid)
	}
	return nil
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty or the file does not exist) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Environment variables read by Load.
const (
	EnvPolicy        = "CGRAPH_POLICY"
	EnvFold          = "CGRAPH_FOLD"
	EnvLogLevel      = "CGRAPH_LOG_LEVEL"
	EnvLogFormat     = "CGRAPH_LOG_FORMAT"
	EnvMetricsListen = "CGRAPH_METRICS_LISTEN"
)

func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPolicy); ok && v != "" {
		cfg.Evaluation.Policy = v
	}
	if v, ok := lookup(EnvFold); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvFold, v, err)
		}
		cfg.Evaluation.Fold = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	if v, ok := lookup(EnvMetricsListen); ok && v != "" {
		cfg.Metrics.Listen = v
		cfg.Metrics.Enabled = true
	}
	return nil
}
