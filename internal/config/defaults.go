// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by [StructuredConfig.applyDefaults] to fields left empty
// by every configuration source.
const (
	DefaultTokenIssuer    = "zk-vault"
	DefaultTokenDuration  = time.Hour
	DefaultRequestTimeout = 30 * time.Second

	DefaultHashingMemory      uint32 = 12288
	DefaultHashingIterations  uint32 = 3
	DefaultHashingParallelism uint8  = 1

	DefaultAuthRateLimit = 5.0
	DefaultAuthRateBurst = 10
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Hashing.Memory == 0 {
		cfg.Hashing.Memory = DefaultHashingMemory
	}
	if cfg.Hashing.Iterations == 0 {
		cfg.Hashing.Iterations = DefaultHashingIterations
	}
	if cfg.Hashing.Parallelism == 0 {
		cfg.Hashing.Parallelism = DefaultHashingParallelism
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = DefaultAuthRateLimit
	}
	if cfg.Server.AuthRateBurst == 0 {
		cfg.Server.AuthRateBurst = DefaultAuthRateBurst
	}
}
