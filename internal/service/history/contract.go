//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"
	"time"

	"courierqueue/internal/entities"
)

type Repository interface {
	Ranking(ctx context.Context, unitID string, from time.Time) ([]entities.RankingEntry, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
