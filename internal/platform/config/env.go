package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvWith loads configuration from the given variable map instead of the
// process environment, which keeps command config parsing testable.
func ParseEnvWith(target any, environ map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvironMap returns the process environment as a map for ParseEnvWith.
func EnvironMap() map[string]string {
	return env.ToMap(os.Environ())
}
