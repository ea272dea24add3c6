package ledgerService

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wagerLedgerBot/models"
)

type bettorRegistry struct {
	db *gorm.DB
}

func (r bettorRegistry) getOrCreate(id string) (*models.Bettor, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidArgument("get bettor", "bettor id is required")
	}

	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Bettor{ID: id}).Error
	if err != nil {
		return nil, err
	}

	var bettor models.Bettor
	if err := r.db.First(&bettor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bettor, nil
}

// find reads a bettor without provisioning one.
func (r bettorRegistry) find(id string) (*models.Bettor, bool, error) {
	var bettor models.Bettor
	err := r.db.First(&bettor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Bettor{ID: id}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &bettor, true, nil
}

// adjustBalance applies delta in SQL so the change composes with whatever
// else the enclosing transaction has already written to the row.
func (r bettorRegistry) adjustBalance(id string, delta int64, winIncrement bool) error {
	updates := map[string]interface{}{
		"balance": gorm.Expr("balance + ?", delta),
	}
	if winIncrement {
		updates["wins"] = gorm.Expr("wins + ?", 1)
	}

	result := r.db.Model(&models.Bettor{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("adjust balance", "no bettor %s", id)
	}
	return nil
}

// grant applies an administrative delta, refusing any change that would
// leave the balance below zero.
func (r bettorRegistry) grant(id string, delta int64) error {
	result := r.db.Model(&models.Bettor{}).
		Where("id = ? AND balance + ? >= 0", id, delta).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return invalidArgument("grant points", "balance of %s cannot go below zero", id)
	}
	return nil
}

func (r bettorRegistry) countWager(id string) error {
	return r.db.Model(&models.Bettor{}).
		Where("id = ?", id).
		Update("total_wagers", gorm.Expr("total_wagers + ?", 1)).Error
}
