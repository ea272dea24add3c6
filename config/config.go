package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string `env:"ENV" envDefault:"local"`
	DiscordToken      string `env:"DISCORD_BOT_TOKEN,required"`
	DiscordGuildID    string `env:"DISCORD_GUILD_ID"`
	DatabaseURL       string `env:"DATABASE_URL" envDefault:"sqlite:ledger.db"`
	MetricsPort       string `env:"METRICS_PORT" envDefault:"9095"`
	LeaderboardSize   int    `env:"LEADERBOARD_SIZE" envDefault:"10"`
	ReminderCron      string `env:"REMINDER_CRON" envDefault:"0 0 * * * *"`
	ReminderChannelID string `env:"REMINDER_CHANNEL_ID"`
}

// Load reads files (".env" when none are given) into the environment and
// parses Config from it. Missing files are fine; variables already set in
// the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if cfg.LeaderboardSize <= 0 {
		return Config{}, fmt.Errorf("LEADERBOARD_SIZE must be positive, got %d", cfg.LeaderboardSize)
	}
	return cfg, nil
}
