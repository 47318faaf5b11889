// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/store"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// uniquenessService checks blind index values against the stored rows of
// the owner. It is the fast path only: the composite unique indexes of the
// storage still decide racing writes.
type uniquenessService struct {
	blindIndexRepository store.BlindIndexRepository

	logger *logger.Logger
}

func NewUniquenessService(blindIndexRepository store.BlindIndexRepository, logger *logger.Logger) UniquenessService {
	return &uniquenessService{
		blindIndexRepository: blindIndexRepository,
		logger:               logger,
	}
}

// ValidateUniqueness compares value byte for byte with the blind indexes of
// ownerID in scope. The value is never decoded or normalised.
//
// Returns a wrapped ErrInvalidDataProvided for an unknown scope or an empty
// value and ErrInvariantViolation for a missing owner.
func (u *uniquenessService) ValidateUniqueness(ctx context.Context, ownerID uuid.UUID, scope models.Scope, value string, excludeID *uuid.UUID) (models.Uniqueness, error) {
	if ownerID == uuid.Nil {
		return models.Conflict, ErrInvariantViolation
	}
	if !scope.Valid() {
		return models.Conflict, fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, store.ErrUnknownScope, scope)
	}
	if value == "" {
		return models.Conflict, fmt.Errorf("%w: empty blind index", ErrInvalidDataProvided)
	}

	exists, err := u.blindIndexRepository.ExistsBlindIndex(ctx, scope, ownerID, value, excludeID)
	if err != nil {
		return models.Conflict, fmt.Errorf("blind index lookup failed: %w", err)
	}
	if exists {
		return models.Conflict, nil
	}

	return models.Accepted, nil
}
