package ledgerService

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"wagerLedgerBot/metrics"
	"wagerLedgerBot/models"
)

// Ledger is the only way into wager state. Every mutating call runs as one
// database transaction: it commits whole or not at all.
type Ledger struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func New(db *gorm.DB, log *zap.Logger) *Ledger {
	return &Ledger{
		db:  db,
		log: log,
		now: func() time.Time { return time.Now().UTC() },
	}
}

type components struct {
	teams   teamRegistry
	bettors bettorRegistry
	bets    betStore
	wagers  wagerBook
}

// bind scopes every component to one handle, normally a transaction.
func bind(db *gorm.DB) components {
	return components{
		teams:   teamRegistry{db: db},
		bettors: bettorRegistry{db: db},
		bets:    betStore{db: db},
		wagers:  wagerBook{db: db},
	}
}

func (c components) settlement() settlementEngine {
	return settlementEngine{bets: c.bets, wagers: c.wagers, bettors: c.bettors}
}

func (l *Ledger) transaction(op string, fn func(c components) error) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return fn(bind(tx))
	})
	return classify(op, err)
}

func (l *Ledger) read() components {
	return bind(l.db)
}

// Ping checks the database is reachable.
func (l *Ledger) Ping() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return classify("ping", err)
	}
	return classify("ping", sqlDB.Ping())
}

// CreateTeam registers name, or returns the existing team of that name with
// its logo replaced when logoRef is non-empty.
func (l *Ledger) CreateTeam(name string, logoRef string) (*models.Team, error) {
	var team *models.Team
	err := l.transaction("create team", func(c components) error {
		var err error
		team, err = c.teams.resolveOrCreate(name, logoRef)
		return err
	})
	if err != nil {
		return nil, err
	}
	l.log.Info("team registered", zap.String("team_id", team.ID), zap.String("name", team.Name))
	return team, nil
}

func (l *Ledger) FindTeam(name string) (*models.Team, error) {
	team, err := l.read().teams.findByName(name)
	return team, classify("find team", err)
}

// CreateBet opens a bet between two registered teams, looked up by name.
func (l *Ledger) CreateBet(teamA, teamB string, oddsA, oddsB float64, opts ...BetOption) (*models.Bet, error) {
	var bet *models.Bet
	err := l.transaction("create bet", func(c components) error {
		sideA, err := c.teams.findByName(teamA)
		if err != nil {
			return err
		}
		sideB, err := c.teams.findByName(teamB)
		if err != nil {
			return err
		}

		bet, err = c.bets.create(sideA.ID, sideB.ID, oddsA, oddsB, l.now(), opts...)
		if err != nil {
			return err
		}
		bet.SideATeam = *sideA
		bet.SideBTeam = *sideB
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("bet created",
		zap.String("bet_id", bet.ID),
		zap.String("side_a", bet.SideATeam.Name),
		zap.String("side_b", bet.SideBTeam.Name),
		zap.Float64("odds_a", bet.OddsA),
		zap.Float64("odds_b", bet.OddsB),
	)
	return bet, nil
}

func (l *Ledger) GetBet(id string) (*models.Bet, error) {
	bet, err := l.read().bets.get(id)
	return bet, classify("get bet", err)
}

// PlaceWager records bettorID's single position on a bet.
func (l *Ledger) PlaceWager(betID, bettorID string, side models.Side, stake int64) (*models.Wager, error) {
	const op = "place wager"

	var wager *models.Wager
	err := l.transaction(op, func(c components) error {
		now := l.now()

		bet, err := c.bets.get(betID)
		if err != nil {
			return err
		}
		if err := c.wagers.checkPlacement(bet, side, stake, now); err != nil {
			return err
		}
		if err := c.bets.touchOpen(bet.ID); err != nil {
			return err
		}
		if _, err := c.bettors.getOrCreate(bettorID); err != nil {
			return err
		}

		wager, err = c.wagers.insert(bet, bettorID, side, stake, now)
		if err != nil {
			return err
		}
		return c.bettors.countWager(bettorID)
	})

	metrics.RecordWager(resultLabel(err))
	if err != nil {
		l.log.Warn("wager rejected",
			zap.String("bet_id", betID),
			zap.String("bettor_id", bettorID),
			zap.String("kind", KindOf(err).String()),
			zap.Error(err),
		)
		return nil, err
	}

	l.log.Info("wager placed",
		zap.String("wager_id", wager.ID),
		zap.String("bet_id", wager.BetID),
		zap.String("bettor_id", wager.BettorID),
		zap.String("side", string(wager.Side)),
		zap.Int64("stake", wager.Stake),
		zap.Float64("odds", wager.OddsAtPlacement),
	)
	return wager, nil
}

// Settle declares a bet's outcome and pays every wager on it. A bet settles
// exactly once; later calls fail with ErrAlreadySettled.
func (l *Ledger) Settle(betID string, outcome models.BetOutcome) (*SettlementReport, error) {
	started := time.Now()

	var report *SettlementReport
	err := l.transaction("settle", func(c components) error {
		var err error
		report, err = c.settlement().settle(betID, outcome, l.now())
		return err
	})

	metrics.RecordSettlement(string(outcome), resultLabel(err), paidOf(report, err), started)
	if err != nil {
		l.log.Warn("settlement failed",
			zap.String("bet_id", betID),
			zap.String("outcome", string(outcome)),
			zap.String("kind", KindOf(err).String()),
			zap.Error(err),
		)
		return nil, err
	}

	l.log.Info("bet settled",
		zap.String("bet_id", report.BetID),
		zap.String("outcome", string(report.Outcome)),
		zap.Int("wins", report.Wins),
		zap.Int("losses", report.Losses),
		zap.Int("voids", report.Voids),
		zap.Int64("total_paid", report.TotalPaid),
	)
	return report, nil
}

// GrantPoints adjusts a bettor's balance outside of settlement, e.g. an
// admin gift. The balance may not go below zero.
func (l *Ledger) GrantPoints(bettorID string, delta int64) (*models.Bettor, error) {
	if delta == 0 {
		return nil, invalidArgument("grant points", "amount must not be zero")
	}

	var bettor *models.Bettor
	err := l.transaction("grant points", func(c components) error {
		if _, err := c.bettors.getOrCreate(bettorID); err != nil {
			return err
		}
		if err := c.bettors.grant(bettorID, delta); err != nil {
			return err
		}
		var err error
		bettor, _, err = c.bettors.find(bettorID)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("points granted", zap.String("bettor_id", bettorID), zap.Int64("delta", delta), zap.Int64("balance", bettor.Balance))
	return bettor, nil
}

// RemoveWager deletes a wager without touching any balance. Only call it for
// wagers on bets that are still open.
func (l *Ledger) RemoveWager(wagerID string) error {
	err := l.transaction("remove wager", func(c components) error {
		return c.wagers.remove(wagerID)
	})
	if err == nil {
		l.log.Info("wager removed", zap.String("wager_id", wagerID))
	}
	return err
}

func (l *Ledger) GetWager(betID, bettorID string) (*models.Wager, error) {
	wager, err := l.read().wagers.get(betID, bettorID)
	return wager, classify("get wager", err)
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	return KindOf(err).String()
}

func paidOf(report *SettlementReport, err error) int64 {
	if err != nil || report == nil {
		return 0
	}
	return report.TotalPaid
}
