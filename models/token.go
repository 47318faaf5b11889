// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set of a session token: the standard registered claims
// plus the username under "name".
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"name,omitempty"`
}

// Token wraps a JWT session token with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// returned to the client. UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	SignedString string `json:"-"`

	UserID uuid.UUID `json:"-"`
}

// GetUserID parses the "sub" claim as a UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to UUID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
