// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordEntry is an encrypted credential stored on behalf of a user.
// Every string field except the ids is standard base64 of client-side
// ciphertext; the server never decodes it.
type PasswordEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"-"`

	EncryptedMetadata    string `json:"encryptedMetadata"`
	EncryptedPassword    string `json:"encryptedPassword"`
	EncryptedPasswordKey string `json:"encryptedPasswordKey"`
	HkdfSalt             string `json:"hkdfSalt"`

	// ServiceUsernameHash is the client-computed blind index of the
	// service/username pair. Unique per user.
	ServiceUsernameHash string `json:"serviceUsernameHash"`

	// Hmac is the client integrity tag over the encrypted fields. Stored and
	// returned unmodified.
	Hmac string `json:"hmac"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the PasswordEntry model.
func (p PasswordEntry) TableName() string {
	return string(ScopePasswordEntries)
}

// BlindIndex returns the value the uniqueness check runs against.
func (p PasswordEntry) BlindIndex() string {
	return p.ServiceUsernameHash
}

func (p PasswordEntry) Scope() Scope       { return ScopePasswordEntries }
func (p PasswordEntry) EntryID() uuid.UUID { return p.ID }
func (p PasswordEntry) OwnerID() uuid.UUID { return p.UserID }

func (p PasswordEntry) Summary() EntrySummary {
	return EntrySummary{ID: p.ID, EncryptedMetadata: p.EncryptedMetadata}
}

func (p PasswordEntry) Ciphertexts() map[string]string {
	return map[string]string{
		"encryptedMetadata":    p.EncryptedMetadata,
		"encryptedPassword":    p.EncryptedPassword,
		"encryptedPasswordKey": p.EncryptedPasswordKey,
		"hkdfSalt":             p.HkdfSalt,
		"serviceUsernameHash":  p.ServiceUsernameHash,
		"hmac":                 p.Hmac,
	}
}

func (p PasswordEntry) WithKey(id, userID uuid.UUID) PasswordEntry {
	p.ID, p.UserID = id, userID
	return p
}

func (p PasswordEntry) WithTimestamps(createdAt, updatedAt time.Time) PasswordEntry {
	p.CreatedAt, p.UpdatedAt = createdAt, updatedAt
	return p
}

func (p PasswordEntry) Timestamps() (time.Time, time.Time) {
	return p.CreatedAt, p.UpdatedAt
}
