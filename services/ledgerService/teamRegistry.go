package ledgerService

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wagerLedgerBot/models"
)

type teamRegistry struct {
	db *gorm.DB
}

// resolveOrCreate returns the team named name, inserting it when absent.
// Concurrent creators of the same name converge on one row because the
// insert yields to the unique name_key index instead of failing.
func (r teamRegistry) resolveOrCreate(name string, logoRef string) (*models.Team, error) {
	const op = "create team"

	key := models.TeamKey(name)
	if key == "" {
		return nil, invalidArgument(op, "team name is required")
	}
	logoRef = strings.TrimSpace(logoRef)

	candidate := models.Team{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		NameKey: key,
	}
	if logoRef != "" {
		candidate.LogoRef = &logoRef
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_key"}},
		DoNothing: true,
	}).Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	var team models.Team
	if err := r.db.Where("name_key = ?", key).First(&team).Error; err != nil {
		return nil, err
	}

	if team.ID != candidate.ID && logoRef != "" && (team.LogoRef == nil || *team.LogoRef != logoRef) {
		if err := r.db.Model(&models.Team{}).Where("id = ?", team.ID).Update("logo_ref", logoRef).Error; err != nil {
			return nil, err
		}
		team.LogoRef = &logoRef
	}
	return &team, nil
}

func (r teamRegistry) findByName(name string) (*models.Team, error) {
	key := models.TeamKey(name)
	if key == "" {
		return nil, invalidArgument("find team", "team name is required")
	}

	var team models.Team
	err := r.db.Where("name_key = ?", key).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("find team", "no team named %q", strings.TrimSpace(name))
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}
