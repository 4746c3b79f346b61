package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("creates the database file and directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "chrono.db")

		db, err := Open(context.Background(), path)
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, db.PingContext(context.Background()))
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := Open(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("foreign keys are enforced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chrono.db")
		db, err := Open(context.Background(), path)
		require.NoError(t, err)
		defer db.Close()

		var enabled int
		require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	})
}
