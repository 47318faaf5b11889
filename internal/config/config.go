// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// zk-vault server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Hashing holds the credential hash engine settings: argon2id cost
	// parameters and the server-wide pepper.
	Hashing Hashing `envPrefix:"HASHING_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Hashing configures the credential hash engine. Changing any of these values
// does not invalidate existing accounts: records produced with older values
// keep verifying and are regenerated on the next successful login.
type Hashing struct {
	// Pepper is the server-wide secret mixed into every credential hash,
	// encoded as standard base64. Must be kept confidential.
	// Env: HASHING_PEPPER
	Pepper string `env:"PEPPER"`

	// Memory is the argon2id memory cost in KiB.
	// Env: HASHING_MEMORY
	Memory uint32 `env:"MEMORY"`

	// Iterations is the argon2id time cost.
	// Env: HASHING_ITERATIONS
	Iterations uint32 `env:"ITERATIONS"`

	// Parallelism is the argon2id lane count.
	// Env: HASHING_PARALLELISM
	Parallelism uint8 `env:"PARALLELISM"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name. A "postgres://" or "postgresql://" DSN
	// selects PostgreSQL; a "sqlite://" or "file:" DSN selects SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server answers 503 (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit is the sustained number of register/login requests per
	// second allowed for a single client IP.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`

	// AuthRateBurst is the burst size for AuthRateLimit.
	// Env: SERVER_AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field still empty after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
