package ledgerService

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wagerLedgerBot/models"
	"wagerLedgerBot/storage"
)

type wagerBook struct {
	db *gorm.DB
}

// checkPlacement validates a wager against the bet as read at the start of
// the placing transaction.
func (b wagerBook) checkPlacement(bet *models.Bet, side models.Side, stake int64, now time.Time) error {
	const op = "place wager"

	if bet.Status != models.BetStatusOpen {
		return alreadySettled(op, bet.ID)
	}
	if bet.LockedAt(now) {
		return &Error{Kind: KindBetLocked, Op: op, Msg: "betting on this bet is closed"}
	}
	if !side.Valid() {
		return invalidArgument(op, "unknown side %q", side)
	}
	if stake <= 0 {
		return invalidArgument(op, "stake must be a positive number of points")
	}
	if stake < bet.MinStake || stake > bet.MaxStake {
		return invalidArgument(op, "stake must be between %d and %d points", bet.MinStake, bet.MaxStake)
	}
	return nil
}

// insert records the wager. The (bet_id, bettor_id) unique index is what
// rejects a second wager, including one racing this insert.
func (b wagerBook) insert(bet *models.Bet, bettorID string, side models.Side, stake int64, now time.Time) (*models.Wager, error) {
	wager := models.Wager{
		ID:              uuid.NewString(),
		BetID:           bet.ID,
		BettorID:        bettorID,
		Side:            side,
		Stake:           stake,
		OddsAtPlacement: bet.OddsFor(side),
		PlacedAt:        now,
		Outcome:         models.WagerPending,
	}

	err := b.db.Omit(clause.Associations).Create(&wager).Error
	if storage.IsUniqueViolation(err) {
		return nil, &Error{Kind: KindDuplicateWager, Op: "place wager", Msg: "you already have a wager on this bet", Err: err}
	}
	if err != nil {
		return nil, err
	}
	return &wager, nil
}

// forBet lists a bet's wagers ordered by bettor, which keeps the row lock
// order on bettors stable across concurrent settlements. It is a locking
// read so wagers committed after the transaction's snapshot are included.
func (b wagerBook) forBet(betID string) ([]models.Wager, error) {
	var wagers []models.Wager
	err := storage.ForUpdate(b.db).Where("bet_id = ?", betID).Order("bettor_id").Find(&wagers).Error
	return wagers, err
}

func (b wagerBook) get(betID, bettorID string) (*models.Wager, error) {
	var wager models.Wager
	err := b.db.Where("bet_id = ? AND bettor_id = ?", betID, bettorID).First(&wager).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("get wager", "no wager by %s on bet %s", bettorID, betID)
	}
	if err != nil {
		return nil, err
	}
	return &wager, nil
}

// recordResult sets payout and outcome once; a wager that already left
// pending is never rewritten.
func (b wagerBook) recordResult(wagerID string, outcome models.WagerOutcome, payout int64) error {
	result := b.db.Model(&models.Wager{}).
		Where("id = ? AND outcome = ?", wagerID, models.WagerPending).
		Updates(map[string]interface{}{
			"outcome": outcome,
			"payout":  payout,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &Error{Kind: KindAlreadySettled, Op: "settle", Msg: "wager " + wagerID + " was already settled"}
	}
	return nil
}

// remove deletes a wager outright. It reverses nothing, so it must only be
// used on wagers whose bet is still open.
func (b wagerBook) remove(wagerID string) error {
	result := b.db.Delete(&models.Wager{}, "id = ?", wagerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("remove wager", "no wager with id %s", wagerID)
	}
	return nil
}
