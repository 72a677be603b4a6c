// Package config loads runtime configuration from SHOOTOUT_*
// environment variables.
package config

import (
	"github.com/caarlos0/env/v11"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

// ParseEnv loads configuration from environment variables into target.
// Parse failures carry the invalid-configuration code so callers can
// branch on them like any other configuration error.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return apperrors.Wrap(apperrors.CodeShootoutInvalidConfiguration, "parse env", err)
	}
	return nil
}
