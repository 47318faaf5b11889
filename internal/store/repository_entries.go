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

// entryRepository is the SQL implementation of [EntryRepository] for one
// collection described by schema.
type entryRepository[T models.VaultEntry[T]] struct {
	logger *logger.Logger
	db     *DB
	schema entrySchema[T]
}

// NewPasswordEntryRepository constructs the repository of the
// "password_entries" table.
func NewPasswordEntryRepository(db *DB, logger *logger.Logger) PasswordEntryRepository {
	logger.Debug().Msg("creating password entry repository")
	return &entryRepository[models.PasswordEntry]{db: db, logger: logger, schema: passwordEntrySchema}
}

// NewNoteRepository constructs the repository of the "notes" table.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &entryRepository[models.Note]{db: db, logger: logger, schema: noteSchema}
}

func (r *entryRepository[T]) Create(ctx context.Context, entry T) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.db.builder, r.schema, entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			return ErrBlindIndexConflict
		}
		log.Err(err).Str("func", "*entryRepository.Create").Str("table", r.schema.table).Msg("error inserting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *entryRepository[T]) List(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, r.schema, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.List").Str("table", r.schema.table).Msg("error listing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.EntrySummary, 0)
	for rows.Next() {
		var summary models.EntrySummary
		if err := rows.Scan(&summary.ID, &summary.EncryptedMetadata); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (r *entryRepository[T]) Get(ctx context.Context, userID, id uuid.UUID) (T, error) {
	log := logger.FromContext(ctx)
	var entry T

	query, args, err := buildGetEntryQuery(r.db.builder, r.schema, userID, id)
	if err != nil {
		return entry, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(r.schema.scan(&entry)...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.Get").Str("table", r.schema.table).Msg("error scanning entry")
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository[T]) Update(ctx context.Context, entry T) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.db.builder, r.schema, entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			return ErrBlindIndexConflict
		}
		log.Err(err).Str("func", "*entryRepository.Update").Str("table", r.schema.table).Msg("error updating entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrEntryNotFound)
}

func (r *entryRepository[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(r.db.builder, r.schema, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.Delete").Str("table", r.schema.table).Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrEntryNotFound)
}
