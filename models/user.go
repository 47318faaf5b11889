// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered vault account.
// PasswordHash holds a self-describing credential hash record and must never
// leave the server.
type User struct {
	// ID is a UUID v7 assigned at registration.
	ID uuid.UUID `json:"id"`

	// Username is the login name as supplied at registration. Uniqueness is
	// case-insensitive.
	Username string `json:"username"`

	// PasswordHash is the argon2id credential record. Replaced in place when a
	// login detects stale hashing settings.
	PasswordHash string `json:"-"`

	// MasterSalt is the client-side key derivation salt (base64). The server
	// stores it verbatim and returns it on login.
	MasterSalt string `json:"masterSalt"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Identity returns the identity context the credential hash is bound to:
// the lower-cased username.
func (u User) Identity() string {
	return NormalizeUsername(u.Username)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeUsername folds a username into its case-insensitive identity.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}
