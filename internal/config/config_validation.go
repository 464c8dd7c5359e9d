// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that the merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All violated groups
// are reported together.
func (cfg *StructuredConfig) Validate() error {
	var errs []error

	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: password hash key, token sign key and a positive token duration are required", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		errs = append(errs, fmt.Errorf("%w: a persistent database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: http address and a positive request timeout are required", ErrInvalidServerConfigs))
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: http address and a positive request timeout are required", ErrInvalidAdapterConfigs))
	}

	if cfg.Workers.SyncInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: sync interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
