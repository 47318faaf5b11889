// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/zk-vault/models"
)

// encryptedEntry is the part of a vault entry the validator inspects.
type encryptedEntry interface {
	Ciphertexts() map[string]string
	BlindIndex() string
}

// VaultValidator implements the Validator interface for the register and
// login requests and for the encrypted vault entries.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator
// and returns it as the Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.PasswordEntry / *models.PasswordEntry
//   - models.Note / *models.Note
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegisterRequest(*value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLoginRequest(*value, fields...)
	case models.PasswordEntry:
		return v.validateEntry(value, fields...)
	case *models.PasswordEntry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(*value, fields...)
	case models.Note:
		return v.validateEntry(value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldMasterSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		case FieldMasterSalt:
			if request.MasterSalt == "" || !isStdBase64(request.MasterSalt) {
				return ErrInvalidMasterSalt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateEntry(entry encryptedEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlindIndex, FieldCiphertexts}
	}

	for _, f := range fields {
		switch f {
		case FieldBlindIndex:
			blindIndex := entry.BlindIndex()
			if blindIndex == "" {
				return ErrEmptyBlindIndex
			}
			if len(blindIndex) > MaxBlindIndexLength {
				return ErrBlindIndexTooLong
			}
			if !isStdBase64(blindIndex) {
				return ErrInvalidBlindIndex
			}
		case FieldCiphertexts:
			ciphertexts := entry.Ciphertexts()
			for _, name := range slices.Sorted(maps.Keys(ciphertexts)) {
				value := ciphertexts[name]
				if value == "" {
					return fmt.Errorf("%w: %s", ErrEmptyCiphertext, name)
				}
				if !isStdBase64(value) {
					return fmt.Errorf("%w: %s", ErrInvalidCiphertext, name)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if !utf8.ValidString(username) {
		return ErrInvalidUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// isStdBase64 reports whether s is padded standard base64.
func isStdBase64(s string) bool {
	_, err := base64.StdEncoding.Strict().DecodeString(s)
	return err == nil
}
