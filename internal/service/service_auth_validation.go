// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zk-vault/internal/validators"
	"github.com/MKhiriev/zk-vault/models"
)

// AuthValidationService rejects malformed register and login requests
// before they reach the hash engine.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
