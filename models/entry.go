// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// VaultEntry is implemented by every encrypted collection item. T is the
// implementing type itself, so the With* methods return copies of it.
type VaultEntry[T any] interface {
	// Scope names the collection the entry's blind index is unique in.
	Scope() Scope
	// BlindIndex returns the client-computed uniqueness key.
	BlindIndex() string
	// EntryID returns the entry id.
	EntryID() uuid.UUID
	// OwnerID returns the id of the owning user.
	OwnerID() uuid.UUID
	// Summary returns the list representation of the entry.
	Summary() EntrySummary
	// Ciphertexts returns every client-supplied base64 field keyed by its
	// JSON name, the blind index included.
	Ciphertexts() map[string]string
	// Timestamps returns the creation and last update times.
	Timestamps() (createdAt, updatedAt time.Time)
	// WithKey returns a copy of the entry with id and owner replaced.
	WithKey(id, userID uuid.UUID) T
	// WithTimestamps returns a copy of the entry with both timestamps replaced.
	WithTimestamps(createdAt, updatedAt time.Time) T
}
