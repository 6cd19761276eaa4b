package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"courierqueue/internal/entities"
	"courierqueue/internal/repository"
	"courierqueue/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	m := FromDomainModify(&courierModifyEntity)

	var queueKey any = sq.Expr("NOW()")
	if m.QueuePositionKey != nil {
		queueKey = *m.QueuePositionKey
	}

	query, args, err := qb.
		Insert("couriers").
		Columns(
			"name", "phone", "unit_id", "franchise_id", "active", "status", "queue_position_key",
			"use_default_shift", "shift_start", "shift_end", "work_days",
		).
		Values(
			m.Name,
			m.Phone,
			m.UnitID,
			pointerOr(m.FranchiseID, ""),
			pointerOr(m.Active, true),
			pointerOr(m.Status, entities.DefaultStatusType.String()),
			queueKey,
			pointerOr(m.UseDefaultShift, true),
			pointerOr(m.ShiftStart, 0),
			pointerOr(m.ShiftEnd, 0),
			pointerOr(m.WorkDays, nil),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.UnitID != nil {
		builder = builder.Set("unit_id", courierModifyModel.UnitID)
	}
	if courierModifyModel.FranchiseID != nil {
		builder = builder.Set("franchise_id", courierModifyModel.FranchiseID)
	}
	if courierModifyModel.Active != nil {
		builder = builder.Set("active", courierModifyModel.Active)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.QueuePositionKey != nil {
		builder = builder.Set("queue_position_key", courierModifyModel.QueuePositionKey)
	}
	if courierModifyModel.UseDefaultShift != nil {
		builder = builder.
			Set("use_default_shift", courierModifyModel.UseDefaultShift).
			Set("shift_start", courierModifyModel.ShiftStart).
			Set("shift_end", courierModifyModel.ShiftEnd)
	}
	if courierModifyModel.WorkDays != nil {
		builder = builder.Set("work_days", *courierModifyModel.WorkDays)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(courierModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsUniqueViolation(err) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(courierModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

// GetAll - все курьеры, либо курьеры одного юнита, если unitID не пустой.
func (r *Repository) GetAll(ctx context.Context, unitID string) ([]entities.Courier, error) {
	builder := qb.
		Select(courierColumns).
		From("couriers").
		OrderBy("id")

	if unitID != "" {
		builder = builder.Where(sq.Eq{"unit_id": unitID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	couriers, err := r.queryList(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	return couriers, nil
}

// ListActiveByStatus - активные курьеры юнита в заданном статусе, в порядке ключа позиции.
// Отбор по сменам делает вызывающий: окно смены зависит от часового пояса юнита.
func (r *Repository) ListActiveByStatus(ctx context.Context, unitID string, status entities.CourierStatusType) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE unit_id = $1 AND active AND status = $2
		ORDER BY queue_position_key, id`

	couriers, err := r.queryList(ctx, query, unitID, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list by status error: %w", err)
	}
	return couriers, nil
}

// SetQueueKeys перезаписывает ключи позиции одним запросом.
// Затрагиваются только свободные активные курьеры указанного юнита.
func (r *Repository) SetQueueKeys(ctx context.Context, unitID string, keys map[int64]time.Time) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(keys))
	stamps := make([]time.Time, 0, len(keys))
	for id, key := range keys {
		ids = append(ids, id)
		stamps = append(stamps, key)
	}

	query := `
		UPDATE couriers AS c
		SET queue_position_key = v.key,
			updated_at = NOW()
		FROM (
			SELECT UNNEST($1::BIGINT[]) AS id, UNNEST($2::TIMESTAMPTZ[]) AS key
		) AS v
		WHERE c.id = v.id
			AND c.unit_id = $3
			AND c.active
			AND c.status = 'available'`

	result, err := r.querier.Exec(ctx, query, ids, stamps, unitID)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository set queue keys error: %w", err)
	}

	return result.RowsAffected(), nil
}

// Transition меняет статус, только если текущий статус равен From.
// Второй из двух одновременных вызовов получает ErrInvalidTransition.
func (r *Repository) Transition(ctx context.Context, transition entities.CourierTransition) (*entities.Courier, error) {
	builder := qb.
		Update("couriers").
		Set("status", transition.To.String()).
		Set("updated_at", transition.At)

	if transition.QueuePositionKey != nil {
		builder = builder.Set("queue_position_key", *transition.QueuePositionKey)
	}
	if transition.DepartureTime != nil {
		builder = builder.Set("departure_time", *transition.DepartureTime)
	}
	if transition.ClearDeparture {
		builder = builder.Set("departure_time", nil)
	}
	if transition.BagType != nil {
		builder = builder.Set("bag_type", *transition.BagType)
	}
	if transition.CalledAt != nil {
		builder = builder.Set("called_at", *transition.CalledAt)
	}

	where := sq.Eq{"id": transition.ID, "status": transition.From.String()}
	if transition.OfCall != nil {
		where["called_at"] = *transition.OfCall
	}

	query, args, err := builder.
		Where(where).
		Suffix("RETURNING " + courierColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository transition error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(courierModel.scanTargets()...)
	if err == nil {
		return ToDomain(&courierModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected courier repository transition error: %w", err)
	}

	var (
		current  string
		calledAt *time.Time
	)
	err = r.querier.QueryRow(ctx, `SELECT status, called_at FROM couriers WHERE id = $1`, transition.ID).
		Scan(&current, &calledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository transition error: %w", err)
	}

	if current == transition.From.String() && transition.OfCall != nil {
		return nil, fmt.Errorf("%w: courier %d was called again at %v",
			courier.ErrInvalidTransition, transition.ID, calledAt)
	}

	return nil, fmt.Errorf("%w: courier %d is %s, expected %s",
		courier.ErrInvalidTransition, transition.ID, current, transition.From)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...any) ([]entities.Courier, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// очередь одного юнита редко больше пары десятков курьеров
	courierModels := make([]CourierDB, 0, 16)
	for rows.Next() {
		var courierModel CourierDB
		if err := rows.Scan(courierModel.scanTargets()...); err != nil {
			return nil, err
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ToDomainList(courierModels), nil
}

func pointerOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
