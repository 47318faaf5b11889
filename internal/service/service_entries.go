// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/store"
	"github.com/MKhiriev/zk-vault/internal/utils"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// entryService is the EntryService of one encrypted collection. Writes run
// the blind index uniqueness check first and map a unique violation raised
// by the storage to the same ErrBlindIndexConflict.
type entryService[T models.VaultEntry[T]] struct {
	repository store.EntryRepository[T]
	uniqueness UniquenessService

	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func newEntryService[T models.VaultEntry[T]](repository store.EntryRepository[T], uniqueness UniquenessService, logger *logger.Logger) *entryService[T] {
	return &entryService[T]{
		repository:  repository,
		uniqueness:  uniqueness,
		idGenerator: utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func NewPasswordEntryService(repository store.PasswordEntryRepository, uniqueness UniquenessService, logger *logger.Logger) PasswordEntryService {
	return newEntryService(repository, uniqueness, logger)
}

func NewNoteService(repository store.NoteRepository, uniqueness UniquenessService, logger *logger.Logger) NoteService {
	return newEntryService(repository, uniqueness, logger)
}

// Create stores entry for userID under a fresh id and returns that id.
func (s *entryService[T]) Create(ctx context.Context, userID uuid.UUID, entry T) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, ErrInvariantViolation
	}

	if err := s.checkUniqueness(ctx, userID, entry, nil); err != nil {
		return uuid.Nil, err
	}

	id := s.idGenerator.Generate()
	now := s.now().UTC()
	entry = entry.WithKey(id, userID).WithTimestamps(now, now)

	if err := s.repository.Create(ctx, entry); err != nil {
		return uuid.Nil, s.mapWriteError(ctx, err, entry.Scope())
	}

	return id, nil
}

func (s *entryService[T]) List(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error) {
	if userID == uuid.Nil {
		return nil, ErrInvariantViolation
	}

	return s.repository.List(ctx, userID)
}

func (s *entryService[T]) Get(ctx context.Context, userID, id uuid.UUID) (T, error) {
	var zero T
	if userID == uuid.Nil {
		return zero, ErrInvariantViolation
	}

	return s.repository.Get(ctx, userID, id)
}

// Update replaces every client-supplied field of entry id. A missing entry
// is reported before a blind index conflict. The creation time is kept.
func (s *entryService[T]) Update(ctx context.Context, userID, id uuid.UUID, entry T) error {
	if userID == uuid.Nil {
		return ErrInvariantViolation
	}

	existing, err := s.repository.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err = s.checkUniqueness(ctx, userID, entry, &id); err != nil {
		return err
	}

	createdAt, _ := existing.Timestamps()
	entry = entry.WithKey(id, userID).WithTimestamps(createdAt, s.now().UTC())

	if err = s.repository.Update(ctx, entry); err != nil {
		return s.mapWriteError(ctx, err, entry.Scope())
	}

	return nil
}

func (s *entryService[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvariantViolation
	}

	return s.repository.Delete(ctx, userID, id)
}

func (s *entryService[T]) checkUniqueness(ctx context.Context, userID uuid.UUID, entry T, excludeID *uuid.UUID) error {
	verdict, err := s.uniqueness.ValidateUniqueness(ctx, userID, entry.Scope(), entry.BlindIndex(), excludeID)
	if err != nil {
		return err
	}
	if verdict == models.Conflict {
		return ErrBlindIndexConflict
	}

	return nil
}

func (s *entryService[T]) mapWriteError(ctx context.Context, err error, scope models.Scope) error {
	if errors.Is(err, store.ErrBlindIndexConflict) {
		logger.FromContext(ctx).Info().Str("scope", string(scope)).Msg("blind index conflict raised by storage")
		return fmt.Errorf("%w: %w", ErrBlindIndexConflict, err)
	}

	return err
}
