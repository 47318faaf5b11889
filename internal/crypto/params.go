// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// Algorithm is the tag written at the start of every record.
	Algorithm = "argon2id"

	// Version is the argon2 version discriminator (v=19, argon2 1.3).
	Version = argon2.Version

	// SaltLength is a protocol constant. The pepper is recovered from a stored
	// record as everything after the first SaltLength bytes of the salt blob,
	// so changing it breaks parsing of every existing record.
	SaltLength = 16

	// DigestLength is the fixed argon2id output length in bytes.
	DigestLength = 32
)

// CostParams are the argon2id cost parameters embedded in every record.
type CostParams struct {
	// Memory is the memory size in KiB.
	Memory uint32
	// Iterations is the number of passes over the memory.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
}

// DefaultCostParams mirrors the defaults the vault has always been deployed with.
var DefaultCostParams = CostParams{
	Memory:      12288,
	Iterations:  3,
	Parallelism: 1,
}

// Validate reports ErrInvalidInput when any parameter is zero.
func (p CostParams) Validate() error {
	if p.Memory < 1 || p.Iterations < 1 || p.Parallelism < 1 {
		return fmt.Errorf("%w: cost parameters must be positive (m=%d, t=%d, p=%d)",
			ErrInvalidInput, p.Memory, p.Iterations, p.Parallelism)
	}

	return nil
}

// String renders the parameters in the record form "m=<m>,t=<t>,p=<p>".
func (p CostParams) String() string {
	return fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Iterations, p.Parallelism)
}
