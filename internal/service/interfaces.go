// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// AuthService registers accounts, authenticates them and issues session
// tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UniquenessService answers whether a blind index value is still free for an
// owner inside a scope.
type UniquenessService interface {
	// ValidateUniqueness returns Conflict when another record of ownerID in
	// scope carries value. A non-nil excludeID leaves that record out.
	ValidateUniqueness(ctx context.Context, ownerID uuid.UUID, scope models.Scope, value string, excludeID *uuid.UUID) (models.Uniqueness, error)
}

// EntryService manages one encrypted collection of the authenticated user.
type EntryService[T models.VaultEntry[T]] interface {
	Create(ctx context.Context, userID uuid.UUID, entry T) (uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error)
	Get(ctx context.Context, userID, id uuid.UUID) (T, error)
	Update(ctx context.Context, userID, id uuid.UUID, entry T) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type (
	PasswordEntryService = EntryService[models.PasswordEntry]
	NoteService          = EntryService[models.Note]
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// EntryServiceWrapper defines middleware composition for EntryService.
type EntryServiceWrapper[T models.VaultEntry[T]] interface {
	Wrap(EntryService[T]) EntryService[T]
}
