// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "password_hash", "master_salt", "created_at"}

// entrySchema describes how one encrypted collection is laid out in SQL.
// payloadColumns are the client-supplied columns in the order produced by
// payload; scan receives id, user_id, the payload columns, created_at and
// updated_at in that order.
type entrySchema[T any] struct {
	table            string
	blindIndexColumn string
	payloadColumns   []string
	payload          func(entry T) []any
	scan             func(entry *T) []any
}

var passwordEntrySchema = entrySchema[models.PasswordEntry]{
	table:            string(models.ScopePasswordEntries),
	blindIndexColumn: "service_username_hash",
	payloadColumns: []string{
		"encrypted_metadata", "encrypted_password", "encrypted_password_key",
		"hkdf_salt", "service_username_hash", "hmac",
	},
	payload: func(e models.PasswordEntry) []any {
		return []any{
			e.EncryptedMetadata, e.EncryptedPassword, e.EncryptedPasswordKey,
			e.HkdfSalt, e.ServiceUsernameHash, e.Hmac,
		}
	},
	scan: func(e *models.PasswordEntry) []any {
		return []any{
			&e.ID, &e.UserID,
			&e.EncryptedMetadata, &e.EncryptedPassword, &e.EncryptedPasswordKey,
			&e.HkdfSalt, &e.ServiceUsernameHash, &e.Hmac,
			&e.CreatedAt, &e.UpdatedAt,
		}
	},
}

var noteSchema = entrySchema[models.Note]{
	table:            string(models.ScopeNotes),
	blindIndexColumn: "title_hash",
	payloadColumns: []string{
		"encrypted_metadata", "encrypted_note", "encrypted_note_key",
		"hkdf_salt", "title_hash", "hmac",
	},
	payload: func(n models.Note) []any {
		return []any{
			n.EncryptedMetadata, n.EncryptedNote, n.EncryptedNoteKey,
			n.HkdfSalt, n.TitleHash, n.Hmac,
		}
	},
	scan: func(n *models.Note) []any {
		return []any{
			&n.ID, &n.UserID,
			&n.EncryptedMetadata, &n.EncryptedNote, &n.EncryptedNoteKey,
			&n.HkdfSalt, &n.TitleHash, &n.Hmac,
			&n.CreatedAt, &n.UpdatedAt,
		}
	},
}

// blindIndexColumns maps every scope to its table's blind index column.
var blindIndexColumns = map[models.Scope]string{
	models.ScopePasswordEntries: passwordEntrySchema.blindIndexColumn,
	models.ScopeNotes:           noteSchema.blindIndexColumn,
}

func (s entrySchema[T]) selectColumns() []string {
	columns := make([]string, 0, len(s.payloadColumns)+4)
	columns = append(columns, "id", "user_id")
	columns = append(columns, s.payloadColumns...)
	return append(columns, "created_at", "updated_at")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("id", "username", "username_lower", "password_hash", "master_salt", "created_at").
		Values(user.ID, user.Username, user.Identity(), user.PasswordHash, user.MasterSalt, user.CreatedAt).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username_lower": models.NormalizeUsername(username)}).
		ToSql()
}

func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, userID uuid.UUID, passwordHash string) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── entries ───────────────────────────────────────────────────────────────────

func buildInsertEntryQuery[T models.VaultEntry[T]](b sq.StatementBuilderType, s entrySchema[T], entry T) (string, []any, error) {
	values := make([]any, 0, len(s.payloadColumns)+4)
	values = append(values, entry.EntryID(), entry.OwnerID())
	values = append(values, s.payload(entry)...)
	createdAt, updatedAt := entry.Timestamps()
	values = append(values, createdAt, updatedAt)

	return b.Insert(s.table).
		Columns(s.selectColumns()...).
		Values(values...).
		ToSql()
}

func buildListEntriesQuery[T any](b sq.StatementBuilderType, s entrySchema[T], userID uuid.UUID) (string, []any, error) {
	return b.Select("id", "encrypted_metadata").
		From(s.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetEntryQuery[T any](b sq.StatementBuilderType, s entrySchema[T], userID, id uuid.UUID) (string, []any, error) {
	return b.Select(s.selectColumns()...).
		From(s.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildUpdateEntryQuery[T models.VaultEntry[T]](b sq.StatementBuilderType, s entrySchema[T], entry T) (string, []any, error) {
	query := b.Update(s.table)

	payload := s.payload(entry)
	for i, column := range s.payloadColumns {
		query = query.Set(column, payload[i])
	}
	_, updatedAt := entry.Timestamps()

	return query.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": entry.EntryID(), "user_id": entry.OwnerID()}).
		ToSql()
}

func buildDeleteEntryQuery[T any](b sq.StatementBuilderType, s entrySchema[T], userID, id uuid.UUID) (string, []any, error) {
	return b.Delete(s.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// ── blind index ───────────────────────────────────────────────────────────────

func buildBlindIndexExistsQuery(b sq.StatementBuilderType, scope models.Scope, ownerID uuid.UUID, value string, excludeID *uuid.UUID) (string, []any, error) {
	column, ok := blindIndexColumns[scope]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownScope, string(scope))
	}

	query := b.Select("1").
		From(string(scope)).
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.Eq{column: value})
	if excludeID != nil {
		query = query.Where(sq.NotEq{"id": *excludeID})
	}

	return query.Limit(1).ToSql()
}
