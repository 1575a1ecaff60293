package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bot/internal/scheduler"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-bot/transport/discord"
	"github.com/rocketscienceinc/tictactoe-bot/transport/rest"
)

const shutdownTimeout = 10 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	statsRepo, closeStorage, err := newStatsRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close stats storage", tint.Err(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ledger := service.NewStatsLedger(statsRepo)

	bot, err := discord.NewBot(logger, conf.Discord.Token)
	if err != nil {
		return fmt.Errorf("could not create discord bot: %w", err)
	}

	sessionManager := usecase.NewGameSessionManager(
		logger,
		ledger,
		discord.NewMessenger(bot.Session()),
		scheduler.New(),
		metrics.NewCollector(registry),
		conf.Game.IdleTimeout,
	)

	router := discord.NewRouter(logger, bot.Session(), sessionManager, ledger, conf.Discord.Prefix, conf.Game.LeaderboardSize)
	if err = bot.Start(router); err != nil {
		return fmt.Errorf("could not start discord bot: %w", err)
	}

	httpServer := rest.NewServer(logger, conf.HTTPPort, rest.NewRouter(
		rest.NewPingHandler(sessionManager),
		rest.NewStatsHandler(logger, ledger, conf.Game.LeaderboardSize),
		metrics.Handler(registry),
	))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", tint.Err(httpErr))
			httpErrCh <- httpErr
		}
	}()

	var runErr error
	select {
	case runErr = <-httpErrCh:
		runErr = fmt.Errorf("HTTP server error: %w", runErr)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// close the gateway before aborting sessions so no command starts a new one
	if err = bot.Close(); err != nil {
		log.Error("could not close discord bot", tint.Err(err))
	}

	sessionManager.Shutdown(shutdownCtx)

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("could not stop HTTP server", tint.Err(err))
	}

	return runErr
}

// newStatsRepository - in-memory by default, Redis when configured.
func newStatsRepository(ctx context.Context, conf *config.Config) (repository.StatsRepository, func() error, error) {
	if conf.Game.StatsStorage != config.StatsStorageRedis {
		return repository.NewMemoryStatsRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewStatsRepository(redisStorage), redisStorage.Close, nil
}
