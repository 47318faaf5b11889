// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zk-vault/internal/validators"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// EntryValidationService rejects entries whose encrypted fields or blind
// index are missing or not base64 before they reach EntryService.
type EntryValidationService[T models.VaultEntry[T]] struct {
	inner     EntryService[T]
	validator validators.Validator
}

func NewEntryValidationService[T models.VaultEntry[T]]() EntryServiceWrapper[T] {
	return &EntryValidationService[T]{
		validator: validators.NewVaultValidator(),
	}
}

func (v *EntryValidationService[T]) Create(ctx context.Context, userID uuid.UUID, entry T) (uuid.UUID, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, userID, entry)
}

func (v *EntryValidationService[T]) List(ctx context.Context, userID uuid.UUID) ([]models.EntrySummary, error) {
	return v.inner.List(ctx, userID)
}

func (v *EntryValidationService[T]) Get(ctx context.Context, userID, id uuid.UUID) (T, error) {
	return v.inner.Get(ctx, userID, id)
}

func (v *EntryValidationService[T]) Update(ctx context.Context, userID, id uuid.UUID, entry T) error {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, userID, id, entry)
}

func (v *EntryValidationService[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return v.inner.Delete(ctx, userID, id)
}

func (v *EntryValidationService[T]) Wrap(wrapped EntryService[T]) EntryService[T] {
	v.inner = wrapped
	return v
}
