package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type AppConfig struct {
	RuntimePath string `env:"ROSTER_RUNTIME_PATH" envDefault:".roster"`

	// Console
	Prompt string `env:"ROSTER_PROMPT" envDefault:""`
	Banner bool   `env:"ROSTER_BANNER" envDefault:"true"`

	// Re-prompt limit for numeric questions, 0 asks until the answer is valid
	MaxAttempts int `env:"ROSTER_MAX_ATTEMPTS" envDefault:"0" validate:"gte=0"`

	LogLevel string `env:"ROSTER_LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

var validate = validator.New()

// Parse reads AppConfig from the environment and validates it.
func Parse() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("validate app config: %w", err)
	}
	return c, nil
}
