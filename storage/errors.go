package storage

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	mssql "github.com/microsoft/go-mssqldb"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry = 1062
	mysqlLockWait       = 1205
	mysqlDeadlock       = 1213

	mssqlUniqueConstraint = 2627
	mssqlUniqueIndex      = 2601
	mssqlDeadlock         = 1205
	mssqlLockTimeout      = 1222

	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlock             = "40P01"
	pgLockNotAvailable     = "55P03"
)

// IsUniqueViolation reports whether err came from a unique or primary key
// constraint rejecting a write.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	if number, ok := mssqlNumber(err); ok {
		return number == mssqlUniqueConstraint || number == mssqlUniqueIndex
	}

	return false
}

// IsTransient reports whether err is lock contention the caller may retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDeadlock || myErr.Number == mysqlLockWait
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlock, pgLockNotAvailable:
			return true
		}
		return false
	}

	if number, ok := mssqlNumber(err); ok {
		return number == mssqlDeadlock || number == mssqlLockTimeout
	}

	return false
}

// mssqlNumber digs the server error number out of err. The driver returns
// mssql.Error by value, but wrappers sometimes hold a pointer.
func mssqlNumber(err error) (int32, bool) {
	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return msErr.Number, true
	}
	var msErrPtr *mssql.Error
	if errors.As(err, &msErrPtr) && msErrPtr != nil {
		return msErrPtr.Number, true
	}
	return 0, false
}
