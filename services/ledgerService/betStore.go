package ledgerService

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wagerLedgerBot/models"
)

// BetOption tunes a bet at creation.
type BetOption func(*models.Bet)

// WithLockAt closes the bet to new wagers from t onward.
func WithLockAt(t time.Time) BetOption {
	return func(b *models.Bet) {
		t = t.UTC()
		b.LockAt = &t
	}
}

// WithStakeLimits bounds the stake of each wager on the bet.
func WithStakeLimits(minStake, maxStake int64) BetOption {
	return func(b *models.Bet) {
		b.MinStake = minStake
		b.MaxStake = maxStake
	}
}

type betStore struct {
	db *gorm.DB
}

func validOdds(odds float64) bool {
	return odds > 0 && !math.IsInf(odds, 0) && !math.IsNaN(odds)
}

func (s betStore) create(teamAID, teamBID string, oddsA, oddsB float64, now time.Time, opts ...BetOption) (*models.Bet, error) {
	const op = "create bet"

	if teamAID == teamBID {
		return nil, invalidArgument(op, "a bet needs two different teams")
	}
	if !validOdds(oddsA) || !validOdds(oddsB) {
		return nil, invalidArgument(op, "odds must be greater than zero")
	}

	bet := models.Bet{
		ID:          uuid.NewString(),
		SideATeamID: teamAID,
		SideBTeamID: teamBID,
		OddsA:       oddsA,
		OddsB:       oddsB,
		Status:      models.BetStatusOpen,
		Outcome:     models.BetOutcomeUnset,
		MinStake:    models.DefaultMinStake,
		MaxStake:    models.DefaultMaxStake,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&bet)
	}
	if bet.MinStake < 1 || bet.MaxStake < bet.MinStake {
		return nil, invalidArgument(op, "stake limits must satisfy 1 <= min <= max")
	}

	if err := s.db.Omit(clause.Associations).Create(&bet).Error; err != nil {
		return nil, err
	}
	return &bet, nil
}

func (s betStore) get(id string) (*models.Bet, error) {
	var bet models.Bet
	err := s.db.Preload("SideATeam").Preload("SideBTeam").First(&bet, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("get bet", "no bet with id %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

func (s betStore) listOpen() ([]models.Bet, error) {
	var bets []models.Bet
	err := s.db.
		Preload("SideATeam").
		Preload("SideBTeam").
		Where("status = ?", models.BetStatusOpen).
		Order("created_at desc").
		Order("id").
		Find(&bets).Error
	return bets, err
}

func (s betStore) listAwaitingSettlement(now time.Time) ([]models.Bet, error) {
	var bets []models.Bet
	err := s.db.
		Preload("SideATeam").
		Preload("SideBTeam").
		Where("status = ? AND lock_at IS NOT NULL AND lock_at <= ?", models.BetStatusOpen, now).
		Order("lock_at").
		Order("id").
		Find(&bets).Error
	return bets, err
}

type sideStake struct {
	BetID string
	Side  models.Side
	Total int64
}

// stakeTotals sums stakes per side for each bet in betIDs.
func (s betStore) stakeTotals(betIDs []string) (map[string]map[models.Side]int64, error) {
	totals := make(map[string]map[models.Side]int64, len(betIDs))
	if len(betIDs) == 0 {
		return totals, nil
	}

	var rows []sideStake
	err := s.db.Model(&models.Wager{}).
		Select("bet_id, side, SUM(stake) AS total").
		Where("bet_id IN ?", betIDs).
		Group("bet_id, side").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if totals[row.BetID] == nil {
			totals[row.BetID] = make(map[models.Side]int64, 2)
		}
		totals[row.BetID][row.Side] = row.Total
	}
	return totals, nil
}

// touchOpen counts a new wager against an open bet. The write takes the bet
// row's lock, so it queues behind (or blocks) a settlement of the same bet.
func (s betStore) touchOpen(id string) error {
	result := s.db.Model(&models.Bet{}).
		Where("id = ? AND status = ?", id, models.BetStatusOpen).
		Update("wager_count", gorm.Expr("wager_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return alreadySettled("place wager", id)
	}
	return nil
}

// close flips an open bet to settled. Zero rows matched means someone else
// settled it first.
func (s betStore) close(id string, outcome models.BetOutcome, settledAt time.Time) error {
	result := s.db.Model(&models.Bet{}).
		Where("id = ? AND status = ?", id, models.BetStatusOpen).
		Updates(map[string]interface{}{
			"status":     models.BetStatusSettled,
			"outcome":    outcome,
			"settled_at": settledAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return alreadySettled("settle", id)
	}
	return nil
}

func (s betStore) listSettledForTeam(teamID string) ([]models.Bet, error) {
	var bets []models.Bet
	err := s.db.
		Where("status = ? AND (side_a_team_id = ? OR side_b_team_id = ?)", models.BetStatusSettled, teamID, teamID).
		Order("settled_at desc").
		Find(&bets).Error
	return bets, err
}
