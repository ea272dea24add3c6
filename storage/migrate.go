package storage

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"wagerLedgerBot/models"
)

// Migration is one schema step. Up must be idempotent: a crash between Up
// and the version marker reruns it on the next start.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// Migrations is applied in order, each at most once per database.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_ledger_tables",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.Team{}, &models.Bettor{}, &models.Bet{}, &models.Wager{})
		},
	},
	{
		Version: 2,
		Name:    "create_error_logs",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.ErrorLog{})
		},
	},
}

// Migrate brings the schema up to the latest version in Migrations.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	return apply(db, Migrations, log)
}

func apply(db *gorm.DB, migrations []Migration, log *zap.Logger) error {
	if err := db.AutoMigrate(&models.SchemaMigration{}); err != nil {
		return fmt.Errorf("error creating schema_migrations: %w", err)
	}

	var applied []models.SchemaMigration
	if err := db.Find(&applied).Error; err != nil {
		return fmt.Errorf("error reading schema version: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	last := 0
	for _, m := range migrations {
		if m.Version <= last {
			return fmt.Errorf("migration %q: version %d is not after %d", m.Name, m.Version, last)
		}
		last = m.Version

		if done[m.Version] {
			continue
		}

		log.Info("applying migration", zap.Int("version", m.Version), zap.String("name", m.Name))
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&models.SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
	}
	return nil
}
