// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings (sign key,
	// issuer or duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidHashingConfigs indicates a pepper that is not valid base64
	// or out-of-range argon2id cost parameters.
	ErrInvalidHashingConfigs = errors.New("invalid hashing configuration")
	// ErrInvalidStorageConfigs indicates an empty or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing address or a non-positive
	// timeout or rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
