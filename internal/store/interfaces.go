// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// UserRepository persists vault accounts.
type UserRepository interface {
	// CreateUser inserts user. A case-insensitive username clash yields
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername looks a user up by case-insensitive username.
	// Yields [ErrUserNotFound] when there is none.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdatePasswordHash replaces the stored credential record of a user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// EntryRepository persists one encrypted collection. Every operation is
// scoped to the owning user; entries of other users behave as missing.
type EntryRepository[T models.VaultEntry[T]] interface {
	// Create inserts entry. A clash on (user_id, blind index) yields
	// [ErrBlindIndexConflict].
	Create(ctx context.Context, entry T) error
	// List returns id and encrypted metadata of every entry of userID.
	List(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error)
	// Get returns a single entry or [ErrEntryNotFound].
	Get(ctx context.Context, userID, id uuid.UUID) (T, error)
	// Update replaces every client-supplied field of the entry identified by
	// entry.EntryID() and entry.OwnerID().
	Update(ctx context.Context, entry T) error
	// Delete removes the entry or yields [ErrEntryNotFound].
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type (
	PasswordEntryRepository = EntryRepository[models.PasswordEntry]
	NoteRepository          = EntryRepository[models.Note]
)

// BlindIndexRepository answers blind index equality lookups.
type BlindIndexRepository interface {
	// ExistsBlindIndex reports whether ownerID has a row in scope whose blind
	// index equals value byte for byte. A non-nil excludeID leaves that row
	// out of the lookup.
	ExistsBlindIndex(ctx context.Context, scope models.Scope, ownerID uuid.UUID, value string, excludeID *uuid.UUID) (bool, error)
}
