// Package storagetest opens throwaway SQLite databases for tests.
package storagetest

import (
	"fmt"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"wagerLedgerBot/storage"
)

// NewDB returns a migrated database in t's temp dir. The pool is capped at a
// single connection so concurrent transactions queue instead of failing with
// SQLITE_BUSY.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	db, err := storage.OpenDialector(sqlite.Open(fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", path)))
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	if err := storage.Migrate(db, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}
