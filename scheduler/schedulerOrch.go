package scheduler

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"wagerLedgerBot/models"
	"wagerLedgerBot/scheduler/scheduler_jobs"
	"wagerLedgerBot/services/common"
)

// SetupCron schedules the bot's periodic jobs and starts the cron. With no
// reminder channel configured there is nothing to schedule.
func SetupCron(s *discordgo.Session, app *common.App, spec string, channelID string) (*cron.Cron, error) {
	cronService := cron.New(cron.WithSeconds())

	if channelID == "" {
		app.Log.Info("lock reminders disabled, no reminder channel set")
		return cronService, nil
	}

	reminder := scheduler_jobs.NewBetLockReminder(app.Ledger, s, channelID, app.Log)
	_, err := cronService.AddFunc(spec, func() {
		runJob(app, "check-bet-locks", reminder.CheckBetLocks)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	cronService.Start()
	return cronService, nil
}

// runJob runs one scheduled job and records its failure in the error log.
func runJob(app *common.App, name string, job func() error) {
	err := job()
	if err == nil {
		return
	}

	app.Log.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
	errLog := models.ErrorLog{
		GuildID: "CRON ERR",
		Command: name,
		Message: err.Error(),
	}
	if dbErr := app.DB.Create(&errLog).Error; dbErr != nil {
		app.Log.Error("could not record error", zap.String("job", name), zap.Error(dbErr))
	}
}
