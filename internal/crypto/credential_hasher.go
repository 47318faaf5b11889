// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/zk-vault/internal/config"
)

// credentialHasher is the [CredentialHasher] used by the auth service.
// It is read-only after construction and safe for concurrent use.
type credentialHasher struct {
	params CostParams
	pepper []byte
	random io.Reader
}

// NewCredentialHasher builds a [CredentialHasher] from the hashing section of
// the configuration. The pepper is expected as standard base64; an empty
// pepper is accepted but should not be used in production.
func NewCredentialHasher(cfg config.Hashing) (CredentialHasher, error) {
	pepper, err := base64.StdEncoding.DecodeString(cfg.Pepper)
	if err != nil {
		return nil, fmt.Errorf("%w: pepper is not valid base64: %w", ErrInvalidInput, err)
	}

	params := CostParams{
		Memory:      cfg.Memory,
		Iterations:  cfg.Iterations,
		Parallelism: cfg.Parallelism,
	}
	if err = params.Validate(); err != nil {
		return nil, err
	}

	return &credentialHasher{
		params: params,
		pepper: pepper,
		random: rand.Reader,
	}, nil
}

// Hash implements [CredentialHasher].
func (h *credentialHasher) Hash(secret, identityContext []byte) (string, error) {
	return hash(h.random, secret, identityContext, h.params, h.pepper)
}

// Verify implements [CredentialHasher].
func (h *credentialHasher) Verify(secret, identityContext []byte, record string) (Verdict, error) {
	return Verify(secret, identityContext, record, h.params, h.pepper)
}
