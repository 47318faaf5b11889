// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// ErrMalformedCredentialRecord means a stored credential hash could not
	// be parsed. It is a data integrity failure, not a failed login.
	ErrMalformedCredentialRecord = errors.New("stored credential record is malformed")

	ErrBlindIndexConflict = errors.New("an entry with the same blind index already exists")

	// ErrInvariantViolation is returned when an authenticated operation runs
	// without an owner.
	ErrInvariantViolation = errors.New("invariant violation: no authenticated user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
