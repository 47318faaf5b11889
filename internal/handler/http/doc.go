// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the vault.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// per-client rate limiting of the credential endpoints, request tracing,
// access logging and response compression are handled here before requests
// are delegated to the service layer.
package http
