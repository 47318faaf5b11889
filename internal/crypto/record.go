// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	recordSeparator = "$"
	recordSegments  = 5
)

// hashRecord is the parsed form of
//
//	argon2id$v=19$m=<m>,t=<t>,p=<p>$<b64(salt||pepper)>$<b64(digest)>
type hashRecord struct {
	params CostParams
	// saltPepper is salt||pepper exactly as it is fed into argon2.
	saltPepper []byte
	digest     []byte
}

func (r hashRecord) salt() []byte {
	return r.saltPepper[:SaltLength:SaltLength]
}

func (r hashRecord) pepper() []byte {
	return r.saltPepper[SaltLength:]
}

func (r hashRecord) encode() string {
	return strings.Join([]string{
		Algorithm,
		"v=" + strconv.Itoa(Version),
		r.params.String(),
		base64.StdEncoding.EncodeToString(r.saltPepper),
		base64.StdEncoding.EncodeToString(r.digest),
	}, recordSeparator)
}

// parseRecord decodes an encoded record. Every failure wraps ErrMalformedRecord.
func parseRecord(encoded string) (hashRecord, error) {
	parts := strings.Split(encoded, recordSeparator)
	if len(parts) != recordSegments {
		return hashRecord{}, malformed("expected %d segments, got %d", recordSegments, len(parts))
	}

	if parts[0] != Algorithm {
		return hashRecord{}, malformed("unsupported algorithm %q", parts[0])
	}

	version, err := parseParam(parts[1], "v=", 32)
	if err != nil {
		return hashRecord{}, err
	}
	if version != Version {
		return hashRecord{}, malformed("unsupported version %d", version)
	}

	params, err := parseCostParams(parts[2])
	if err != nil {
		return hashRecord{}, err
	}

	saltPepper, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return hashRecord{}, malformed("salt segment: %v", err)
	}
	if len(saltPepper) < SaltLength {
		return hashRecord{}, malformed("salt segment is %d bytes, need at least %d", len(saltPepper), SaltLength)
	}

	digest, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return hashRecord{}, malformed("digest segment: %v", err)
	}
	if len(digest) != DigestLength {
		return hashRecord{}, malformed("digest is %d bytes, want %d", len(digest), DigestLength)
	}

	return hashRecord{
		params:     params,
		saltPepper: saltPepper,
		digest:     digest,
	}, nil
}

// parseCostParams parses "m=<m>,t=<t>,p=<p>" in that exact order.
func parseCostParams(s string) (CostParams, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return CostParams{}, malformed("expected 3 cost parameters, got %d", len(fields))
	}

	memory, err := parseParam(fields[0], "m=", 32)
	if err != nil {
		return CostParams{}, err
	}
	iterations, err := parseParam(fields[1], "t=", 32)
	if err != nil {
		return CostParams{}, err
	}
	parallelism, err := parseParam(fields[2], "p=", 8)
	if err != nil {
		return CostParams{}, err
	}

	params := CostParams{
		Memory:      uint32(memory),
		Iterations:  uint32(iterations),
		Parallelism: uint8(parallelism),
	}
	// zero values would make argon2 panic
	if params.Validate() != nil {
		return CostParams{}, malformed("non-positive cost parameters %q", s)
	}

	return params, nil
}

func parseParam(field, prefix string, bitSize int) (uint64, error) {
	value, ok := strings.CutPrefix(field, prefix)
	if !ok {
		return 0, malformed("expected %q prefix in %q", prefix, field)
	}

	n, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		return 0, malformed("parameter %q: %v", field, err)
	}

	return n, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}
