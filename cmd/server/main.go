package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geo-calc-service/internal/adapters/journal"
	"geo-calc-service/internal/api"
	"geo-calc-service/internal/config"
	"geo-calc-service/internal/platform/db"
	"geo-calc-service/internal/platform/logging"
	"geo-calc-service/internal/platform/metrics"
	"geo-calc-service/internal/ports"
	"geo-calc-service/internal/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the calculators, the optional journal adapter and the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calcJournal, closeJournal, err := openJournal(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeJournal()

	m := metrics.New()
	router := api.NewRouter(
		services.NewDistanceCalculator(calcJournal, m, logger),
		services.NewAzimuthCalculator(calcJournal, m, logger),
		m,
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("journal", cfg.JournalBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("run: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("run: shutdown: %w", err)
	}
	return nil
}

// openJournal builds the configured calculation journal and its cleanup func.
func openJournal(ctx context.Context, cfg *config.Config) (ports.CalculationJournal, func(), error) {
	switch cfg.JournalBackend {
	case config.JournalPostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open journal: %w", err)
		}
		return journal.NewSQLCalculationJournal(conn), closer(conn), nil

	case config.JournalRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("open journal: ping redis %q: %w", cfg.RedisAddr, err)
		}
		j := journal.NewRedisCalculationJournal(client, cfg.RedisStream, cfg.RedisStreamMaxLen)
		return j, func() { _ = client.Close() }, nil

	default:
		return journal.NopJournal{}, func() {}, nil
	}
}

func closer(conn *sql.DB) func() {
	return func() { _ = conn.Close() }
}
