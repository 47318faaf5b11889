// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/zk-vault/internal/config"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/service"
	"github.com/MKhiriev/zk-vault/internal/store"
	"github.com/MKhiriev/zk-vault/internal/validators"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
			assert.Equal(t, "alice", request.Username)
			assert.Equal(t, "correct-horse", request.Password)
			assert.Equal(t, "c2FsdA==", request.MasterSalt)
			return models.AuthResponse{Token: "signed.jwt.token"}, nil
		},
	}

	rec := serve(t, newHandlerWithAuth(t, auth), http.MethodPost, "/api/register",
		`{"username":"alice","password":"correct-horse","masterSalt":"c2FsdA=="}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decodeBody[models.AuthResponse](t, rec)
	assert.Equal(t, "signed.jwt.token", got.Token)
	assert.Empty(t, got.MasterSalt)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"username":"alice","password":"pw","masterSalt":"c2FsdA==","admin":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "validation failure",
			body:        `{"username":"","password":"pw","masterSalt":"c2FsdA=="}`,
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyUsername),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: username is required",
		},
		{
			name:        "username taken",
			body:        `{"username":"Alice","password":"pw","masterSalt":"c2FsdA=="}`,
			serviceErr:  fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: store.ErrUsernameAlreadyExists.Error(),
		},
		{
			name:        "token creation failure",
			body:        `{"username":"alice","password":"pw","masterSalt":"c2FsdA=="}`,
			serviceErr:  fmt.Errorf("%w: signing key", service.ErrTokenCreationFailed),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
		{
			name:        "unexpected error hides details",
			body:        `{"username":"alice","password":"pw","masterSalt":"c2FsdA=="}`,
			serviceErr:  errors.New("db password is hunter2"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &mockAuthService{
				registerUserFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
					called = true
					return models.AuthResponse{}, tt.serviceErr
				},
			}

			rec := serve(t, newHandlerWithAuth(t, auth), http.MethodPost, "/api/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.serviceErr != nil, called)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.AuthResponse, error) {
			assert.Equal(t, "alice", request.Username)
			assert.Equal(t, "correct-horse", request.Password)
			return models.AuthResponse{Token: "signed.jwt.token", MasterSalt: "c2FsdA=="}, nil
		},
	}

	rec := serve(t, newHandlerWithAuth(t, auth), http.MethodPost, "/api/login",
		`{"username":"alice","password":"correct-horse"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.AuthResponse](t, rec)
	assert.Equal(t, "signed.jwt.token", got.Token)
	assert.Equal(t, "c2FsdA==", got.MasterSalt)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid credentials",
			serviceErr:  service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrInvalidCredentials.Error(),
		},
		{
			name:        "malformed stored record is a server error",
			serviceErr:  fmt.Errorf("%w: bad salt", service.ErrMalformedCredentialRecord),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
		{
			name:        "validation failure",
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPassword),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
					return models.AuthResponse{}, tt.serviceErr
				},
			}

			rec := serve(t, newHandlerWithAuth(t, auth), http.MethodPost, "/api/login",
				`{"username":"alice","password":"pw"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	rec := serve(t, newHandlerWithAuth(t, &mockAuthService{}), http.MethodPost, "/api/login", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), ErrInvalidJSON.Error())
}

func TestLogin_RateLimited(t *testing.T) {
	calls := 0
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			calls++
			return models.AuthResponse{}, service.ErrInvalidCredentials
		},
	}
	h := NewHandler(&service.Services{AuthService: auth},
		config.Server{AuthRateLimit: 0.001, AuthRateBurst: 2}, logger.Nop())

	body := `{"username":"alice","password":"guess"}`
	assert.Equal(t, http.StatusUnauthorized, serve(t, h, http.MethodPost, "/api/login", body).Code)
	// register shares the per-client budget with login
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodPost, "/api/register", `not json`).Code)

	rec := serve(t, h, http.MethodPost, "/api/login", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, ErrTooManyRequests.Error(), errorMessage(t, rec))
	assert.Equal(t, 1, calls)
}
