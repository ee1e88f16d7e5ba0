// Package config loads the settings of the algo-mir command-line tools from a
// YAML file and environment overrides.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cwbudde/algo-mir/rhythm/tempocnn"
)

// Environment variables that override file values.
const (
	EnvLogLevel      = "ALGOMIR_LOG_LEVEL"
	EnvTempoMethod   = "ALGOMIR_TEMPO_METHOD"
	EnvDecodeWorkers = "ALGOMIR_DECODE_WORKERS"
)

// EnvVars lists every environment variable Load consults.
func EnvVars() []string {
	return []string{EnvLogLevel, EnvTempoMethod, EnvDecodeWorkers}
}

var validate = validator.New()

// Config is the root configuration document.
type Config struct {
	LogLevel      string          `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	DecodeWorkers int             `yaml:"decode_workers" validate:"gte=0"`
	Tempo         tempocnn.Config `yaml:"tempo"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Tempo:    tempocnn.DefaultConfig(),
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := validate.StructPartial(c, "LogLevel", "DecodeWorkers"); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Tempo.Validate(); err != nil {
		return fmt.Errorf("config: tempo: %w", err)
	}
	return nil
}
