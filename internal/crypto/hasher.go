// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Verdict is the outcome of verifying a secret against a stored record.
// The zero value is NoMatch.
type Verdict int

const (
	// NoMatch means the secret is wrong. It is final.
	NoMatch Verdict = iota
	// Match means the secret is correct and the record uses current settings.
	Match
	// MatchButStale means the secret is correct but the record was produced
	// with other cost parameters or another pepper and should be regenerated.
	MatchButStale
)

func (v Verdict) String() string {
	switch v {
	case Match:
		return "match"
	case MatchButStale:
		return "match_but_stale"
	default:
		return "no_match"
	}
}

// Hash derives a new credential hash record for secret bound to
// identityContext. A fresh salt is drawn from crypto/rand for every call, so
// hashing the same secret twice yields two different records.
//
// Returns ErrInvalidInput for an empty secret or invalid params.
func Hash(secret, identityContext []byte, params CostParams, pepper []byte) (string, error) {
	return hash(rand.Reader, secret, identityContext, params, pepper)
}

func hash(random io.Reader, secret, identityContext []byte, params CostParams, pepper []byte) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("%w: empty secret", ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return "", err
	}

	saltPepper := make([]byte, SaltLength, SaltLength+len(pepper))
	if _, err := io.ReadFull(random, saltPepper); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	saltPepper = append(saltPepper, pepper...)

	record := hashRecord{
		params:     params,
		saltPepper: saltPepper,
		digest:     deriveDigest(secret, identityContext, saltPepper, params),
	}

	return record.encode(), nil
}

// Verify checks secret against an encoded record.
//
// The digest is always re-derived with the parameters and pepper embedded in
// the record, never with current ones. Only after a constant-time match are
// the record's own parameters and pepper compared with current and
// currentPepper to decide between Match and MatchButStale.
//
// A record that cannot be parsed yields ErrMalformedRecord, never NoMatch.
func Verify(secret, identityContext []byte, record string, current CostParams, currentPepper []byte) (Verdict, error) {
	parsed, err := parseRecord(record)
	if err != nil {
		return NoMatch, err
	}

	digest := deriveDigest(secret, identityContext, parsed.saltPepper, parsed.params)
	if subtle.ConstantTimeCompare(digest, parsed.digest) != 1 {
		return NoMatch, nil
	}

	if parsed.params != current || subtle.ConstantTimeCompare(parsed.pepper(), currentPepper) != 1 {
		return MatchButStale, nil
	}

	return Match, nil
}

// deriveDigest runs argon2id over len(identity)||identity||secret salted with
// salt||pepper. The big-endian length prefix keeps the identity/secret split
// unambiguous, so a record cannot be replayed under another identity.
func deriveDigest(secret, identityContext, saltPepper []byte, params CostParams) []byte {
	input := make([]byte, 4+len(identityContext)+len(secret))
	defer clear(input)

	binary.BigEndian.PutUint32(input, uint32(len(identityContext)))
	n := copy(input[4:], identityContext)
	copy(input[4+n:], secret)

	return argon2.IDKey(input, saltPepper, params.Iterations, params.Memory, params.Parallelism, DigestLength)
}
