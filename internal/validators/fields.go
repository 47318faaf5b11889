// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login name of a register or login request.
	FieldUsername = "username"

	// FieldPassword targets the account password of a register or login request.
	FieldPassword = "password"

	// FieldMasterSalt targets the client key derivation salt of a register request.
	FieldMasterSalt = "masterSalt"

	// FieldCiphertexts targets every encrypted field of a vault entry.
	FieldCiphertexts = "ciphertexts"

	// FieldBlindIndex targets the blind index of a vault entry.
	FieldBlindIndex = "blindIndex"
)

// Limits enforced by [VaultValidator].
const (
	MaxUsernameLength   = 50
	MaxPasswordLength   = 1024
	MaxBlindIndexLength = 512
)
