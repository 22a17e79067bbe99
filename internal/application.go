package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harsh9299/tictactoe-engine/internal/config"
	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/repository"
	"github.com/Harsh9299/tictactoe-engine/internal/repository/storage"
	"github.com/Harsh9299/tictactoe-engine/internal/service"
	"github.com/Harsh9299/tictactoe-engine/internal/usecase"
	"github.com/Harsh9299/tictactoe-engine/transport/rest"
	"github.com/Harsh9299/tictactoe-engine/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

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

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	defaultDifficulty, err := engine.ParseDifficulty(conf.Bot.DefaultDifficulty)
	if err != nil {
		return fmt.Errorf("could not parse default bot difficulty: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	statsRepo := repository.NewStatsRepository(sqliteStorage.Connection)

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok

	authService := service.NewAuthService(conf.SessionSecretKey)
	botService := service.NewBotService(rng)
	statsService := service.NewStatsService(logger, statsRepo)

	gameUseCase := usecase.NewGameUseCase(logger, playerRepo, gameRepo, botService, statsService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		gameHandler := rest.NewGameHandler(logger, gameUseCase, authService, defaultDifficulty)
		if httpErr := rest.New(gameHandler).Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, defaultDifficulty)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
