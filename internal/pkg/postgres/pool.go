package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"courierqueue/internal/pkg/config"
	"courierqueue/pkg/logger"
	"courierqueue/pkg/retrier"
	"courierqueue/pkg/retrier/backoff_adapter"
)

const maxConnLifetime = time.Hour

// NewConnPool открывает пул и ждет, пока база начнет отвечать:
// при старте через docker compose postgres поднимается позже сервиса.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
		poolCfg.MinConns = cfg.MinConns
	}
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("db", cfg.DBName),
	)

	if err := waitForDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func newDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func waitForDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	var attempt uint64
	ping := backoff_adapter.New(retrier.Config{
		InitialInterval: 2 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
		OnRetry: func(err error, wait time.Duration) {
			log.Warn("database is not reachable yet",
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", wait),
				logger.NewField("error", err),
			)
		},
	})

	err := ping.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return pool.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
	}

	log.Info("database connection established", logger.NewField("attempts", attempt))
	return nil
}
