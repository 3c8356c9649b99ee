// Package testdb opens throwaway SQLite databases for repository tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns an isolated in-memory database with models auto-migrated.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
func Open(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	return db
}

// Exec runs raw DDL, e.g. partial indexes AutoMigrate cannot express.
func Exec(t *testing.T, db *gorm.DB, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
}
