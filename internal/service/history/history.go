package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courierqueue/internal/entities"
)

const DefaultRankingPeriod = 24 * time.Hour

type History struct {
	repository Repository
	retention  time.Duration
	now        func() time.Time
}

func New(repository Repository, retention time.Duration) *History {
	return &History{
		repository: repository,
		retention:  retention,
		now:        time.Now,
	}
}

func (s *History) WithClock(now func() time.Time) *History {
	s.now = now
	return s
}

// Ranking - число вызовов по курьерам юнита начиная с from.
// Нулевой from означает последние сутки.
func (s *History) Ranking(ctx context.Context, unitID string, from time.Time) (*entities.Ranking, error) {
	if strings.TrimSpace(unitID) == "" {
		return nil, ErrMissingRequiredFields
	}

	now := s.now().UTC()
	if from.IsZero() {
		from = now.Add(-DefaultRankingPeriod)
	}
	if from.After(now) {
		return nil, ErrInvalidPeriod
	}

	entries, err := s.repository.Ranking(ctx, unitID, from)
	if err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}

	return &entities.Ranking{
		UnitID:  unitID,
		From:    from,
		Entries: entries,
	}, nil
}

// CleanupHistory удаляет записи старше срока хранения. Нулевой срок отключает очистку.
func (s *History) CleanupHistory(ctx context.Context) (int64, error) {
	if s.retention <= 0 {
		return 0, nil
	}

	deleted, err := s.repository.DeleteOlderThan(ctx, s.now().UTC().Add(-s.retention))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("history cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("history cleanup: %w", err)
	}

	return deleted, nil
}
