// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed Go client of the zk-vault HTTP API.
//
// [ServerAdapter] keeps the session token returned by Register and Login and
// attaches it to every request of the entry collections. Non-2xx responses
// are mapped to the sentinels in errors.go, so callers can match them with
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// ServerAdapter talks to one zk-vault server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Version fetches the server version.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an account and stores the returned token. The
	// response carries the master salt saved at registration.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// Passwords returns the password entry collection.
	Passwords() EntryAdapter[models.PasswordEntry]

	// Notes returns the note collection.
	Notes() EntryAdapter[models.Note]
}

// EntryAdapter manages one encrypted collection of the logged in user.
type EntryAdapter[T any] interface {
	Create(ctx context.Context, entry T) (uuid.UUID, error)
	List(ctx context.Context) ([]models.EntrySummary, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Update(ctx context.Context, id uuid.UUID, entry T) error
	Delete(ctx context.Context, id uuid.UUID) error
}
