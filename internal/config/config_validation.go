// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final [AppConfig] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *AppConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Defaults.Algorithm == "" || cfg.Defaults.Iterations <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Crypto.Backend != BackendOpenSSL && cfg.Crypto.Backend != BackendNative {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
