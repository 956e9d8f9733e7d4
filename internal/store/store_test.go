package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createFixture builds a SQLite database with a users table.
func createFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);
		INSERT INTO users (id, name) VALUES (1, 'ada');
	`)
	require.NoError(t, err)
	return path
}

func TestOpen_MissingDatabase(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")
}

func TestOpen_AppliesQueryOnly(t *testing.T) {
	s, err := Open(createFixture(t))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.verifyPragma("query_only", "1"))
	require.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

func TestQuery_ReadsRows(t *testing.T) {
	s, err := Open(createFixture(t))
	require.NoError(t, err)
	defer s.Close()

	rows, err := s.Query(context.Background(), "SELECT name FROM users;")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var name string
	require.NoError(t, rows.Scan(&name))
	assert.Equal(t, "ada", name)
	assert.False(t, rows.Next())
	require.NoError(t, rows.Err())
}

func TestQuery_WritesAreRejected(t *testing.T) {
	s, err := Open(createFixture(t))
	require.NoError(t, err)
	defer s.Close()

	rows, err := s.Query(context.Background(), "INSERT INTO users (id, name) VALUES (9, 'eve')")
	if err == nil {
		// Some drivers surface the readonly violation at iteration.
		defer rows.Close()
		for rows.Next() {
		}
		err = rows.Err()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly")
}

func TestClose_Idempotent(t *testing.T) {
	s, err := Open(createFixture(t))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
