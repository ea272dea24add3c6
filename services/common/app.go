package common

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/ledgerService"
)

// Ledger is the part of the ledger the Discord handlers call.
type Ledger interface {
	CreateTeam(name string, logoRef string) (*models.Team, error)
	ListTeamStats(name string) (*ledgerService.TeamStats, error)
	CreateBet(teamA, teamB string, oddsA, oddsB float64, opts ...ledgerService.BetOption) (*models.Bet, error)
	GetBet(id string) (*models.Bet, error)
	ListOpenBets() ([]ledgerService.OpenBet, error)
	ListBetsAwaitingSettlement(now time.Time) ([]models.Bet, error)
	PlaceWager(betID, bettorID string, side models.Side, stake int64) (*models.Wager, error)
	Settle(betID string, outcome models.BetOutcome) (*ledgerService.SettlementReport, error)
	GetUserHistory(bettorID string) ([]models.Wager, error)
	GetLeaderboard(limit int) ([]models.Bettor, error)
	GetBettor(id string) (*models.Bettor, error)
	GrantPoints(bettorID string, delta int64) (*models.Bettor, error)
}

// App carries what every handler needs. DB is only used for the error log;
// ledger state goes through Ledger.
type App struct {
	Ledger          Ledger
	Log             *zap.Logger
	DB              *gorm.DB
	LeaderboardSize int
}
