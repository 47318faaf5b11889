// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// AuthResponse is returned by register and login. MasterSalt is only set on
// login.
type AuthResponse struct {
	Token      string `json:"token"`
	MasterSalt string `json:"masterSalt,omitempty"`
}

// CreatedResponse carries the id of a newly created entry.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// EntrySummary is a list item: the id plus the encrypted metadata the client
// needs to render it.
type EntrySummary struct {
	ID                uuid.UUID `json:"id"`
	EncryptedMetadata string    `json:"encryptedMetadata"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Message string `json:"message"`
}
