// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrInvalidUsername   = errors.New("username is not valid UTF-8")
	ErrEmptyPassword     = errors.New("password is required")
	ErrPasswordTooLong   = errors.New("password is too long")
	ErrInvalidMasterSalt = errors.New("master salt must be non-empty standard base64")

	ErrEmptyCiphertext   = errors.New("encrypted field is required")
	ErrInvalidCiphertext = errors.New("encrypted field must be standard base64")
	ErrEmptyBlindIndex   = errors.New("blind index is required")
	ErrBlindIndexTooLong = errors.New("blind index is too long")
	ErrInvalidBlindIndex = errors.New("blind index must be standard base64")
)
