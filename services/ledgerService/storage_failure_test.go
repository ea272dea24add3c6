package ledgerService

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap/zaptest"
	mysqlDriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"wagerLedgerBot/models"
	"wagerLedgerBot/storage"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := storage.OpenDialector(mysqlDriver.New(mysqlDriver.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}))
	if err != nil {
		return nil, nil, err
	}

	return gormDB, mock, nil
}

func TestSettleBeginFailure(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	l := New(db, zaptest.NewLogger(t))

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err = l.Settle("b1", models.BetOutcomeSideA)
	expectKind(t, err, KindStorageFailure)
	if IsRetryable(err) {
		t.Error("A refused connection is not contention")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unfulfilled expectations: %v", err)
	}
}

func TestSettleDeadlockIsRetryable(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	l := New(db, zaptest.NewLogger(t))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `bets`").
		WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})
	mock.ExpectRollback()

	_, err = l.Settle("b1", models.BetOutcomeSideA)
	expectKind(t, err, KindStorageFailure)
	if !IsRetryable(err) {
		t.Errorf("Expected deadlock to be retryable: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unfulfilled expectations: %v", err)
	}
}

func TestPlaceWagerDuplicateFromDriver(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	l := New(db, zaptest.NewLogger(t))

	betRows := sqlmock.NewRows([]string{"id", "side_a_team_id", "side_b_team_id", "odds_a", "odds_b", "status", "outcome", "min_stake", "max_stake", "wager_count"}).
		AddRow("b1", "t1", "t2", 2.0, 1.5, models.BetStatusOpen, "", 1, 1000, 0)
	teamRows := func(id, name string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "name_key"}).AddRow(id, name, name)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `bets`").WillReturnRows(betRows)
	mock.ExpectQuery("SELECT \\* FROM `teams`").WillReturnRows(teamRows("t1", "vitality"))
	mock.ExpectQuery("SELECT \\* FROM `teams`").WillReturnRows(teamRows("t2", "fnatic"))
	mock.ExpectExec("UPDATE `bets` SET `wager_count`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `bettors`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `bettors`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow("alice", 0))
	mock.ExpectExec("INSERT INTO `wagers`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'b1-alice' for key 'uq_wagers_bet_bettor'"})
	mock.ExpectRollback()

	_, err = l.PlaceWager("b1", "alice", models.SideA, 10)
	expectKind(t, err, KindDuplicateWager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unfulfilled expectations: %v", err)
	}
}

func TestSettleReadsWagersWithLock(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	l := New(db, zaptest.NewLogger(t))

	betRows := sqlmock.NewRows([]string{"id", "side_a_team_id", "side_b_team_id", "odds_a", "odds_b", "status", "outcome", "min_stake", "max_stake", "wager_count"}).
		AddRow("b1", "t1", "t2", 2.0, 1.5, models.BetStatusOpen, "", 1, 1000, 0)
	teamRows := func(id, name string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "name_key"}).AddRow(id, name, name)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `bets`").WillReturnRows(betRows)
	mock.ExpectQuery("SELECT \\* FROM `teams`").WillReturnRows(teamRows("t1", "vitality"))
	mock.ExpectQuery("SELECT \\* FROM `teams`").WillReturnRows(teamRows("t2", "fnatic"))
	mock.ExpectExec("UPDATE `bets` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `wagers` WHERE bet_id = \\? ORDER BY bettor_id FOR UPDATE").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bet_id", "bettor_id", "side", "stake", "odds_at_placement", "outcome", "payout"}))
	mock.ExpectCommit()

	report, err := l.Settle("b1", models.BetOutcomeSideA)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(report.Payouts) != 0 {
		t.Errorf("Expected no payouts, got %d", len(report.Payouts))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unfulfilled expectations: %v", err)
	}
}
