package history

import (
	"context"
	"fmt"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/internal/repository"
	"courierqueue/internal/service/courier"
	"courierqueue/internal/service/history"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.DeliveryHistoryCreate) (*entities.DeliveryHistoryRecord, error) {
	query := `
		INSERT INTO delivery_history (courier_id, unit_id, bag_type, delivery_count, has_beverage, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, courier_id, unit_id, bag_type, delivery_count, has_beverage, created_at, returned_at
	`

	var historyDB DeliveryHistoryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		record.CourierID,
		record.UnitID,
		record.BagType,
		record.DeliveryCount,
		record.HasBeverage,
		record.CreatedAt,
	).Scan(
		&historyDB.ID,
		&historyDB.CourierID,
		&historyDB.UnitID,
		&historyDB.BagType,
		&historyDB.DeliveryCount,
		&historyDB.HasBeverage,
		&historyDB.CreatedAt,
		&historyDB.ReturnedAt,
	)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected history repository create error: %w", err)
	}

	return ToDomain(&historyDB), nil
}

// MarkReturned проставляет время возврата в последней открытой записи курьера.
func (r *Repository) MarkReturned(ctx context.Context, courierID int64, returnedAt time.Time) error {
	query := `
		UPDATE delivery_history
		SET returned_at = $2
		WHERE id = (
			SELECT id
			FROM delivery_history
			WHERE courier_id = $1 AND returned_at IS NULL
			ORDER BY created_at DESC
			LIMIT 1
		)
	`

	result, err := r.querier.Exec(ctx, query, courierID, returnedAt)
	if err != nil {
		return fmt.Errorf("unexpected history repository mark returned error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return history.ErrOpenRecordNotFound
	}
	return nil
}

// Ranking - число вызовов и доставок по курьерам юнита начиная с from.
func (r *Repository) Ranking(ctx context.Context, unitID string, from time.Time) ([]entities.RankingEntry, error) {
	query := `
		SELECT
			h.courier_id,
			COALESCE(c.name, ''),
			COUNT(*) AS calls,
			COALESCE(SUM(h.delivery_count), 0)
		FROM delivery_history h
		LEFT JOIN couriers c ON c.id = h.courier_id
		WHERE h.unit_id = $1 AND h.created_at >= $2
		GROUP BY h.courier_id, c.name
		ORDER BY calls DESC, h.courier_id ASC
	`

	rows, err := r.querier.Query(ctx, query, unitID, from)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository ranking error: %w", err)
	}
	defer rows.Close()

	rankingRows := make([]RankingDB, 0, 16)
	for rows.Next() {
		var row RankingDB
		err := rows.Scan(&row.CourierID, &row.CourierName, &row.Calls, &row.Deliveries)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository ranking error: %w", err)
		}
		rankingRows = append(rankingRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository ranking error: %w", err)
	}

	return ToRankingDomainList(rankingRows), nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM delivery_history WHERE created_at < $1
	`

	result, err := r.querier.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("unexpected history repository delete error: %w", err)
	}

	return result.RowsAffected(), nil
}
