package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/rest"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/terminal"
)

const shutdownTimeout = 5 * time.Second

// RunApp - runs the application until the players quit or a signal arrives.
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

	scoreRepo, closeStorage := newScoreRepository(ctx, log, conf)

	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	session := usecase.NewSession(ctx, logger, scoreRepo, conf.NicknameMaxLength)

	// run the leaderboard HTTP server
	if conf.HTTPPort != "" {
		server := rest.New(logger, scoreRepo)

		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			if httpErr := server.Start(conf.HTTPPort); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
		}()

		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()

			if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
				log.Error("could not shutdown HTTP server", "error", shutdownErr)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create terminal screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()

	log.Info("Starting terminal UI")

	if err = terminal.New(logger, screen, session).Run(ctx); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Terminal UI closed, shutting down")

	return nil
}

// newScoreRepository - the configured score storage with its closer. A storage that cannot be opened is
// logged and replaced by one that fails every call, so the games are played without records.
func newScoreRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func() error) {
	scoreRepo, closeStorage, err := openScoreRepository(ctx, conf)
	if err != nil {
		log.Error("score storage is unavailable, best scores will not be kept", "storage", conf.ScoreStorage, "error", err)

		return repository.NewUnavailableScoreRepository(err), func() error { return nil }
	}

	return scoreRepo, closeStorage
}

func openScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	switch conf.ScoreStorage {
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisScoreRepository(redisStorage.Connection), redisStorage.Close, nil
	default:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, nil, errors.Join(fmt.Errorf("could not init sqlite storage: %w", err), sqliteStorage.Close())
		}

		return repository.NewSQLiteScoreRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	}
}
