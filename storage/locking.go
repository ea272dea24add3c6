package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate turns the next query into a locking read on engines that take
// their snapshot at the first read of a transaction (MySQL InnoDB under
// REPEATABLE READ) or support row locks (Postgres). A locking read sees the
// latest committed rows. SQLite has no row locks and SQL Server's default
// READ COMMITTED already reads the latest rows, so neither gets the clause.
func ForUpdate(db *gorm.DB) *gorm.DB {
	switch db.Dialector.Name() {
	case "mysql", "postgres":
		return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	return db
}
