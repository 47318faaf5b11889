// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the server-side credential hash engine.
//
// Records are self-describing argon2id strings that embed their own cost
// parameters and salt||pepper blob, which lets the pepper and the cost
// parameters be rotated online: a login that verifies against an outdated
// record reports MatchButStale and the caller overwrites the record.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_hasher_mock.go -package=mock

// CredentialHasher is a credential hash engine bound to the current cost
// parameters and pepper of the deployment.
type CredentialHasher interface {
	// Hash produces a fresh record for secret bound to identityContext using
	// the current settings.
	Hash(secret, identityContext []byte) (string, error)

	// Verify checks secret against record and compares the record with the
	// current settings. Malformed records yield ErrMalformedRecord.
	Verify(secret, identityContext []byte, record string) (Verdict, error)
}
