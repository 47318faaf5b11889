// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is an encrypted free-form note stored on behalf of a user.
type Note struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"-"`

	EncryptedMetadata string `json:"encryptedMetadata"`
	EncryptedNote     string `json:"encryptedNote"`
	EncryptedNoteKey  string `json:"encryptedNoteKey"`
	HkdfSalt          string `json:"hkdfSalt"`

	// TitleHash is the client-computed blind index of the note title.
	// Unique per user.
	TitleHash string `json:"titleHash"`
	Hmac      string `json:"hmac"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return string(ScopeNotes)
}

// BlindIndex returns the value the uniqueness check runs against.
func (n Note) BlindIndex() string {
	return n.TitleHash
}

func (n Note) Scope() Scope       { return ScopeNotes }
func (n Note) EntryID() uuid.UUID { return n.ID }
func (n Note) OwnerID() uuid.UUID { return n.UserID }

func (n Note) Summary() EntrySummary {
	return EntrySummary{ID: n.ID, EncryptedMetadata: n.EncryptedMetadata}
}

func (n Note) Ciphertexts() map[string]string {
	return map[string]string{
		"encryptedMetadata": n.EncryptedMetadata,
		"encryptedNote":     n.EncryptedNote,
		"encryptedNoteKey":  n.EncryptedNoteKey,
		"hkdfSalt":          n.HkdfSalt,
		"titleHash":         n.TitleHash,
		"hmac":              n.Hmac,
	}
}

func (n Note) WithKey(id, userID uuid.UUID) Note {
	n.ID, n.UserID = id, userID
	return n
}

func (n Note) WithTimestamps(createdAt, updatedAt time.Time) Note {
	n.CreatedAt, n.UpdatedAt = createdAt, updatedAt
	return n
}

func (n Note) Timestamps() (time.Time, time.Time) {
	return n.CreatedAt, n.UpdatedAt
}
