// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/zk-vault/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, DialectPostgres, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Dialect("oracle"), logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "vault.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite, logger.Nop()))
	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite, logger.Nop()))

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())

	joined := strings.Join(tables, ",")
	for _, want := range []string{"users", "password_entries", "notes", "goose_db_version"} {
		assert.Contains(t, joined, want)
	}
}

func TestMigrate_SQLiteEnforcesBlindIndexUniqueness(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "vault.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db, DialectSQLite, logger.Nop()))

	_, err = db.Exec(`INSERT INTO users (id, username, username_lower, password_hash, master_salt)
		VALUES ('u1', 'Alice', 'alice', 'h', 's'), ('u2', 'Bob', 'bob', 'h', 's')`)
	require.NoError(t, err)

	insert := `INSERT INTO notes (id, user_id, encrypted_metadata, encrypted_note, encrypted_note_key, hkdf_salt, title_hash, hmac)
		VALUES (?, ?, 'm', 'n', 'k', 's', ?, 'h')`

	_, err = db.Exec(insert, "n1", "u1", "dGl0bGU=")
	require.NoError(t, err)
	_, err = db.Exec(insert, "n2", "u2", "dGl0bGU=")
	require.NoError(t, err, "other owner may reuse the value")
	_, err = db.Exec(insert, "n3", "u1", "dGl0bGU=")
	require.Error(t, err, "same owner must not reuse the value")
	_, err = db.Exec(`INSERT INTO users (id, username, username_lower, password_hash, master_salt)
		VALUES ('u3', 'ALICE', 'alice', 'h', 's')`)
	require.Error(t, err, "usernames are unique case-insensitively")
}
