package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/internal/common"
)

func TestInitDatabaseSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bills.db")

	db, err := InitDatabase(ctx, &common.Config{}, path, slog.Default())
	require.NoError(t, err)
	defer db.Cleanup()

	require.NotNil(t, db.Client)
	assert.Nil(t, db.Pool)

	created, err := NewCategoryRepository(db.Client, slog.Default()).SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, created)
}
