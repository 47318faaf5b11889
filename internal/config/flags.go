// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-pepper base64 encoded credential pepper
//	-hash-memory argon2id memory cost in KiB
//	-hash-iterations argon2id time cost
//	-hash-parallelism argon2id parallelism
//	-auth-rate-limit register/login requests per second per client IP
//	-auth-rate-burst register/login burst per client IP
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var pepper string
	var hashMemory, hashIterations, hashParallelism uint
	var authRateLimit float64
	var authRateBurst int

	fs := flag.NewFlagSet("zk-vault", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&pepper, "pepper", "", "Base64 encoded credential pepper")
	fs.UintVar(&hashMemory, "hash-memory", 0, "Argon2id memory cost in KiB")
	fs.UintVar(&hashIterations, "hash-iterations", 0, "Argon2id time cost")
	fs.UintVar(&hashParallelism, "hash-parallelism", 0, "Argon2id parallelism")
	fs.Float64Var(&authRateLimit, "auth-rate-limit", 0, "Register/login requests per second per client IP")
	fs.IntVar(&authRateBurst, "auth-rate-burst", 0, "Register/login burst per client IP")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if hashMemory > math.MaxUint32 || hashIterations > math.MaxUint32 || hashParallelism > math.MaxUint8 {
		return nil, fmt.Errorf("%w: hashing flag out of range", ErrInvalidHashingConfigs)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Hashing: Hashing{
			Pepper:      pepper,
			Memory:      uint32(hashMemory),
			Iterations:  uint32(hashIterations),
			Parallelism: uint8(hashParallelism),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AuthRateLimit:  authRateLimit,
			AuthRateBurst:  authRateBurst,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
