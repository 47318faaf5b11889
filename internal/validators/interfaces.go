// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound vault requests before they
// reach the services.
//
// Core concepts:
//   - Validator: generic interface to validate request models.
//     Supports optional field-level scoping for targeted validation.
//
// Validators only check presence, length and encoding. Ciphertexts and blind
// indexes are verified to be standard base64 and are otherwise left opaque.
package validators

import "context"

// Validator defines a generic validation interface for request models.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
