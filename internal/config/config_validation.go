// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var supportedDSNPrefixes = []string{"postgres://", "postgresql://", "sqlite://", "file:"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := base64.StdEncoding.DecodeString(cfg.Hashing.Pepper); err != nil {
		return fmt.Errorf("%w: pepper must be base64: %w", ErrInvalidHashingConfigs, err)
	}
	if cfg.Hashing.Memory == 0 || cfg.Hashing.Iterations == 0 || cfg.Hashing.Parallelism == 0 {
		return ErrInvalidHashingConfigs
	}

	if !hasSupportedPrefix(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func hasSupportedPrefix(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
