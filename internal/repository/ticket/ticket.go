package ticket

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
	"courierqueue/internal/service/ticket"
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

// NextNumber увеличивает счетчик талонов юнита. Вызывать внутри транзакции:
// строка счетчика блокируется до коммита, поэтому номера не повторяются.
func (r *Repository) NextNumber(ctx context.Context, unitID string) (int64, error) {
	query := `
		INSERT INTO ticket_sequences (unit_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (unit_id) DO UPDATE
		SET last_number = ticket_sequences.last_number + 1
		RETURNING last_number
	`

	var number int64
	err := r.querier.QueryRow(ctx, query, unitID).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("unexpected ticket repository next number error: %w", err)
	}

	return number, nil
}

func (r *Repository) Create(ctx context.Context, create entities.TicketCreate) (*entities.PaymentTicket, error) {
	query := `
		INSERT INTO payment_tickets (number, unit_id, franchise_id, courier_id, courier_name, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + ticketColumns

	var ticketModel TicketDB
	err := r.querier.QueryRow(
		ctx,
		query,
		create.Number,
		create.UnitID,
		create.FranchiseID,
		create.CourierID,
		create.CourierName,
		entities.TicketWaiting.String(),
		create.CreatedAt,
		create.ExpiresAt,
	).Scan(ticketModel.scanTargets()...)
	if err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			return nil, ticket.ErrTicketAlreadyExists
		case repository.IsForeignKeyViolation(err):
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected ticket repository create error: %w", err)
	}

	return ToDomain(&ticketModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.PaymentTicket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM payment_tickets
		WHERE id = $1`

	var ticketModel TicketDB
	err := r.querier.QueryRow(ctx, query, id).Scan(ticketModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("unexpected ticket repository getbyid error: %w", err)
	}

	return ToDomain(&ticketModel), nil
}

// ListByUnit - талоны юнита, при status != nil только в этом статусе.
func (r *Repository) ListByUnit(ctx context.Context, unitID string, status *entities.TicketStatusType) ([]entities.PaymentTicket, error) {
	builder := qb.
		Select(ticketColumns).
		From("payment_tickets").
		Where(sq.Eq{"unit_id": unitID}).
		OrderBy("created_at", "id")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}
	defer rows.Close()

	ticketModels := make([]TicketDB, 0, 16)
	for rows.Next() {
		var ticketModel TicketDB
		if err := rows.Scan(ticketModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
		}
		ticketModels = append(ticketModels, ticketModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}

	return ToDomainList(ticketModels), nil
}

// Transition переводит талон из From в To, проставляя соответствующую метку времени.
func (r *Repository) Transition(ctx context.Context, transition entities.TicketTransition) (*entities.PaymentTicket, error) {
	builder := qb.
		Update("payment_tickets").
		Set("status", transition.To.String())

	switch transition.To {
	case entities.TicketCalled:
		builder = builder.Set("called_at", transition.At)
	case entities.TicketSettled:
		builder = builder.Set("settled_at", transition.At)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": transition.ID, "status": transition.From.String()}).
		Suffix("RETURNING " + ticketColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository transition error: %w", err)
	}

	var ticketModel TicketDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(ticketModel.scanTargets()...)
	if err == nil {
		return ToDomain(&ticketModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected ticket repository transition error: %w", err)
	}

	var current string
	err = r.querier.QueryRow(ctx, `SELECT status FROM payment_tickets WHERE id = $1`, transition.ID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("unexpected ticket repository transition error: %w", err)
	}

	return nil, fmt.Errorf("%w: ticket %d is %s, expected %s",
		ticket.ErrInvalidTransition, transition.ID, current, transition.From)
}

// DeleteSettledExpired удаляет оплаченные талоны с истекшим сроком хранения.
func (r *Repository) DeleteSettledExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM payment_tickets WHERE status = 'settled' AND expires_at < $1
	`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected ticket repository delete expired error: %w", err)
	}

	return result.RowsAffected(), nil
}
