// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users and encrypted vault entries in PostgreSQL or
// SQLite. Queries are built with squirrel for the connection's placeholder
// format; driver errors are classified per dialect so that unique index
// violations surface as domain errors.
package store

import "github.com/MKhiriev/zk-vault/internal/logger"

// Repositories aggregates every repository over one database.
type Repositories struct {
	Users           UserRepository
	PasswordEntries PasswordEntryRepository
	Notes           NoteRepository
	BlindIndexes    BlindIndexRepository
}

// NewRepositories constructs every repository over db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db, logger),
		PasswordEntries: NewPasswordEntryRepository(db, logger),
		Notes:           NewNoteRepository(db, logger),
		BlindIndexes:    NewBlindIndexRepository(db, logger),
	}
}
