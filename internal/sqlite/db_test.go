package sqlite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing. The
// shared-cache DSN keeps every pooled connection on the same database.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := New(dsn)
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='projects'").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "projects table not found")
}

// TestContainsFoldFunction verifies the registered scalar function folds
// Unicode case the way the list filters require.
func TestContainsFoldFunction(t *testing.T) {
	db := NewTestDB(t)

	tests := []struct {
		hay, needle string
		want        int
	}{
		{"MAZOWIECKIE, ŁÓDZKIE", "łódzkie", 1},
		{"mazowieckie", "MAZOWIECKIE", 1},
		{"POMORSKIE", "ŚLĄSKIE", 0},
		{"anything", "", 1},
	}

	for _, tc := range tests {
		var got int
		err := db.QueryRow("SELECT contains_fold(?, ?)", tc.hay, tc.needle).Scan(&got)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "contains_fold(%q, %q)", tc.hay, tc.needle)
	}
}
