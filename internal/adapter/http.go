// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/utils"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	passwords *httpEntryAdapter[models.PasswordEntry]
	notes     *httpEntryAdapter[models.Note]

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a [ServerAdapter] for the server at
// address. A missing scheme defaults to http. Returns an error if address is
// empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	adapter := &httpServerAdapter{client: client, logger: logger}
	adapter.passwords = &httpEntryAdapter[models.PasswordEntry]{adapter: adapter, path: "/api/passwords"}
	adapter.notes = &httpEntryAdapter[models.Note]{adapter: adapter, path: "/api/notes"}

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version sends GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// Register sends POST /api/register and stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	response, err := h.authenticate(ctx, "/api/register", request)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return response, nil
}

// Login sends POST /api/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	response, err := h.authenticate(ctx, "/api/login", request)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return response, nil
}

func (h *httpServerAdapter) Passwords() EntryAdapter[models.PasswordEntry] {
	return h.passwords
}

func (h *httpServerAdapter) Notes() EntryAdapter[models.Note] {
	return h.notes
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var response models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&response).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if response.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: empty token in response", ErrUnauthorized)
	}

	h.SetToken(response.Token)
	h.logger.Debug().Str("path", path).Msg("session token stored")

	return response, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
