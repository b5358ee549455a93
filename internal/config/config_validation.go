// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies the client
// runtime invariants after defaults have been applied.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if len(cfg.App.AllowedEmailDomains) == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
