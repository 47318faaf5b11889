// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidInput is returned before any hashing takes place when the
	// secret is empty or a cost parameter is out of range.
	ErrInvalidInput = errors.New("invalid hashing input")

	// ErrMalformedRecord is returned when a stored credential hash record
	// cannot be parsed. It signals data corruption and must never be treated
	// as an authentication failure.
	ErrMalformedRecord = errors.New("malformed credential hash record")

	// ErrRandomSource is returned when the salt cannot be read from the
	// random source.
	ErrRandomSource = errors.New("failed to read random salt")
)
