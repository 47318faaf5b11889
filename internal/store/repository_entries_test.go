// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswordEntry() models.PasswordEntry {
	now := time.Now().UTC()
	return models.PasswordEntry{
		EncryptedMetadata:    "bWV0YQ==",
		EncryptedPassword:    "cGFzcw==",
		EncryptedPasswordKey: "a2V5",
		HkdfSalt:             "c2FsdA==",
		ServiceUsernameHash:  "YmxpbmQ=",
		Hmac:                 "aG1hYw==",
	}.WithKey(uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())).WithTimestamps(now, now)
}

var passwordEntryColumns = []string{
	"id", "user_id", "encrypted_metadata", "encrypted_password", "encrypted_password_key",
	"hkdf_salt", "service_username_hash", "hmac", "created_at", "updated_at",
}

func TestEntryRepository_Create(t *testing.T) {
	entry := testPasswordEntry()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPasswordEntryRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO password_entries")).
			WithArgs(entry.ID.String(), entry.UserID.String(),
				entry.EncryptedMetadata, entry.EncryptedPassword, entry.EncryptedPasswordKey,
				entry.HkdfSalt, entry.ServiceUsernameHash, entry.Hmac,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to blind index conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPasswordEntryRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO password_entries").
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		assert.ErrorIs(t, repo.Create(context.Background(), entry), ErrBlindIndexConflict)
	})

	t.Run("foreign key violation is not a conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPasswordEntryRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO password_entries").
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		err := repo.Create(context.Background(), entry)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrBlindIndexConflict)
	})
}

func TestEntryRepository_List(t *testing.T) {
	userID := uuid.New()
	first, second := uuid.New(), uuid.New()

	t.Run("rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, encrypted_metadata FROM notes WHERE user_id = $1")).
			WithArgs(userID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "encrypted_metadata"}).
				AddRow(first.String(), "bTE=").
				AddRow(second.String(), "bTI="))

		got, err := repo.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, []models.EntrySummary{
			{ID: first, EncryptedMetadata: "bTE="},
			{ID: second, EncryptedMetadata: "bTI="},
		}, got)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery("FROM notes").
			WillReturnRows(sqlmock.NewRows([]string{"id", "encrypted_metadata"}))

		got, err := repo.List(context.Background(), userID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery("FROM notes").WillReturnError(errors.New("boom"))

		_, err := repo.List(context.Background(), userID)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectQuery("FROM notes").
			WillReturnRows(sqlmock.NewRows([]string{"id", "encrypted_metadata"}).
				AddRow(first.String(), "bTE=").
				RowError(0, errors.New("broken row")))

		_, err := repo.List(context.Background(), userID)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestEntryRepository_Get(t *testing.T) {
	entry := testPasswordEntry()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPasswordEntryRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM password_entries WHERE id = $1 AND user_id = $2")).
			WithArgs(entry.ID.String(), entry.UserID.String()).
			WillReturnRows(sqlmock.NewRows(passwordEntryColumns).AddRow(
				entry.ID.String(), entry.UserID.String(),
				entry.EncryptedMetadata, entry.EncryptedPassword, entry.EncryptedPasswordKey,
				entry.HkdfSalt, entry.ServiceUsernameHash, entry.Hmac,
				entry.CreatedAt, entry.UpdatedAt,
			))

		got, err := repo.Get(context.Background(), entry.UserID, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPasswordEntryRepository(db, logger.Nop())

		mock.ExpectQuery("FROM password_entries").
			WillReturnRows(sqlmock.NewRows(passwordEntryColumns))

		_, err := repo.Get(context.Background(), entry.UserID, entry.ID)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestEntryRepository_Update(t *testing.T) {
	entry := testPasswordEntry()

	tests := []struct {
		name    string
		prepare func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE password_entries SET")).
					WithArgs(entry.EncryptedMetadata, entry.EncryptedPassword, entry.EncryptedPasswordKey,
						entry.HkdfSalt, entry.ServiceUsernameHash, entry.Hmac,
						sqlmock.AnyArg(), entry.ID.String(), entry.UserID.String()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing or foreign entry",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE password_entries").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrEntryNotFound,
		},
		{
			name: "blind index taken by another entry",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE password_entries").WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrBlindIndexConflict,
		},
		{
			name: "driver error",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE password_entries").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPasswordEntryRepository(db, logger.Nop())
			tt.prepare(mock)

			err := repo.Update(context.Background(), entry)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntryRepository_Delete(t *testing.T) {
	userID, id := uuid.New(), uuid.New()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1 AND user_id = $2")).
			WithArgs(id.String(), userID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), userID, id))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), userID, id), ErrEntryNotFound)
	})
}
