// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// blindIndexRepository implements [BlindIndexRepository] by querying the
// table of the requested scope. The stored value is compared as-is; it is
// never decoded or normalised.
type blindIndexRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBlindIndexRepository(db *DB, logger *logger.Logger) BlindIndexRepository {
	logger.Debug().Msg("creating blind index repository")
	return &blindIndexRepository{db: db, logger: logger}
}

func (r *blindIndexRepository) ExistsBlindIndex(ctx context.Context, scope models.Scope, ownerID uuid.UUID, value string, excludeID *uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBlindIndexExistsQuery(r.db.builder, scope, ownerID, value, excludeID)
	if err != nil {
		if errors.Is(err, ErrUnknownScope) {
			return false, err
		}
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*blindIndexRepository.ExistsBlindIndex").Str("scope", string(scope)).Msg("error looking up blind index")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
