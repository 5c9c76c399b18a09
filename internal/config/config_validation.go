// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minPasswordCost = 4
	maxPasswordCost = 31
)

// validate checks that the merged server [StructuredConfig] can start a
// server: a database, a token key, a version and at least one listener.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings are incomplete", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordCost < minPasswordCost || cfg.App.PasswordCost > maxPasswordCost {
		return fmt.Errorf("%w: password cost out of range", ErrInvalidAppConfigs)
	}

	if cfg.App.Version == "" {
		return fmt.Errorf("%w: version is not specified", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
