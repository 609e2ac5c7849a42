// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing Firebase credentials file is deliberately NOT a validation error:
// the verifier starts unconfigured and protected routes answer 503.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is empty", ErrInvalidServerConfigs)
	}

	if cfg.App.AuthTestMode && cfg.App.IsProduction() {
		return fmt.Errorf("%w: auth test mode cannot be enabled in production", ErrInvalidAppConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Auth.KeysURL == "" || cfg.Auth.KeysTTL <= 0 || cfg.Auth.KeysFetchTimeout <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
