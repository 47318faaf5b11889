// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Scope names a collection inside which blind index values must be unique
// per owner. Each scope maps to its own table and blind index column.
type Scope string

const (
	ScopePasswordEntries Scope = "password_entries"
	ScopeNotes           Scope = "notes"
)

// Scopes lists every known scope.
var Scopes = []Scope{ScopePasswordEntries, ScopeNotes}

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	for _, known := range Scopes {
		if s == known {
			return true
		}
	}
	return false
}

// Uniqueness is the outcome of a blind index uniqueness check.
type Uniqueness int

const (
	// Accepted means no other record of the owner in the scope carries the
	// same blind index.
	Accepted Uniqueness = iota
	// Conflict means another record of the owner in the scope already
	// carries the same blind index.
	Conflict
)

func (u Uniqueness) String() string {
	switch u {
	case Accepted:
		return "accepted"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}
