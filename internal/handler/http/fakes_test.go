// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/zk-vault/internal/config"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/service"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var errNotStubbed = errors.New("not stubbed")

// mockAuthService is a function-field fake of service.AuthService.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	if m.registerUserFn == nil {
		return models.AuthResponse{}, errNotStubbed
	}
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	if m.loginFn == nil {
		return models.AuthResponse{}, errNotStubbed
	}
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, errNotStubbed
	}
	return m.parseTokenFn(ctx, tokenString)
}

// mockEntryService is a function-field fake of service.EntryService.
type mockEntryService[T models.VaultEntry[T]] struct {
	createFn func(ctx context.Context, userID uuid.UUID, entry T) (uuid.UUID, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error)
	getFn    func(ctx context.Context, userID, id uuid.UUID) (T, error)
	updateFn func(ctx context.Context, userID, id uuid.UUID, entry T) error
	deleteFn func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockEntryService[T]) Create(ctx context.Context, userID uuid.UUID, entry T) (uuid.UUID, error) {
	if m.createFn == nil {
		return uuid.Nil, errNotStubbed
	}
	return m.createFn(ctx, userID, entry)
}

func (m *mockEntryService[T]) List(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error) {
	if m.listFn == nil {
		return nil, errNotStubbed
	}
	return m.listFn(ctx, userID)
}

func (m *mockEntryService[T]) Get(ctx context.Context, userID, id uuid.UUID) (T, error) {
	if m.getFn == nil {
		var zero T
		return zero, errNotStubbed
	}
	return m.getFn(ctx, userID, id)
}

func (m *mockEntryService[T]) Update(ctx context.Context, userID, id uuid.UUID, entry T) error {
	if m.updateFn == nil {
		return errNotStubbed
	}
	return m.updateFn(ctx, userID, id, entry)
}

func (m *mockEntryService[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.deleteFn == nil {
		return errNotStubbed
	}
	return m.deleteFn(ctx, userID, id)
}

type mockAppInfoService struct {
	version models.VersionResponse
}

func (m *mockAppInfoService) GetAppVersion(context.Context) models.VersionResponse {
	return m.version
}

// testToken is the bearer token accepted by tokenAuth.
const testToken = "valid-token"

// tokenAuth returns an auth fake that accepts testToken for userID.
func tokenAuth(userID uuid.UUID) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: userID}, nil
		},
	}
}

// newTestHandler builds a Handler with unlimited auth rate and a nop logger.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers must be key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authHeader() []string {
	return []string{"Authorization", "Bearer " + testToken}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec).Message
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
