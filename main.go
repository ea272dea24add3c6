package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"wagerLedgerBot/config"
	"wagerLedgerBot/logger"
	"wagerLedgerBot/metrics"
	"wagerLedgerBot/scheduler"
	"wagerLedgerBot/services"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
	"wagerLedgerBot/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zl, err := logger.New("wager-ledger-bot", cfg.Env)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := storage.Open(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := storage.Migrate(db, zl); err != nil {
		zl.Fatal("error migrating database", zap.Error(err))
	}

	ledger := ledgerService.New(db, zl)
	app := &common.App{
		Ledger:          ledger,
		Log:             zl,
		DB:              db,
		LeaderboardSize: cfg.LeaderboardSize,
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		zl.Fatal("error creating Discord session", zap.Error(err))
	}

	dg.AddHandler(services.InteractionHandler(app))
	dg.AddHandler(services.MessageHandler(app))
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		if err := s.UpdateGameStatus(0, "Managing Bets!"); err != nil {
			zl.Warn("could not set status", zap.Error(err))
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	if err := dg.Open(); err != nil {
		zl.Fatal("error opening Discord session", zap.Error(err))
	}
	defer func() {
		if err := dg.Close(); err != nil {
			zl.Warn("error closing Discord session", zap.Error(err))
		}
	}()

	if err := services.RegisterCommands(dg, cfg.DiscordGuildID); err != nil {
		zl.Fatal("error registering commands", zap.Error(err))
	}

	cronService, err := scheduler.SetupCron(dg, app, cfg.ReminderCron, cfg.ReminderChannelID)
	if err != nil {
		zl.Fatal("error scheduling jobs", zap.Error(err))
	}

	metricsServer := metrics.StartServer(cfg.MetricsPort, ledger.Ping)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zl.Info("bot is running, press CTRL+C to exit", zap.String("env", cfg.Env), zap.String("metrics_port", cfg.MetricsPort))
	<-ctx.Done()

	zl.Info("shutting down")
	<-cronService.Stop().Done()
	if err := metrics.Shutdown(metricsServer); err != nil {
		zl.Warn("error stopping metrics server", zap.Error(err))
	}
}
