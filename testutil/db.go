// Package testutil berisi helper untuk test yang butuh database.
package testutil

import (
	"testing"

	"BIOSECURE/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB membuka SQLite in-memory yang sudah dimigrasi. Satu koneksi saja
// supaya semua query melihat database yang sama.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.Migrate(db))
	return db
}

// UseDB memasang db sebagai models.DB selama test berjalan.
func UseDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	prev := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prev })
}
