package unit

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type settingsSource interface {
	Get(ctx context.Context, unitID string) (*entities.UnitSettings, error)
}

type cacheLogger interface {
	Warn(msg string, fields ...logger.Field)
}
