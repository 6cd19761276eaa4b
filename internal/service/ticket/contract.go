//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_test
package ticket

import (
	"context"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

type Repository interface {
	NextNumber(ctx context.Context, unitID string) (int64, error)
	Create(ctx context.Context, create entities.TicketCreate) (*entities.PaymentTicket, error)
	GetByID(ctx context.Context, id int64) (*entities.PaymentTicket, error)
	ListByUnit(ctx context.Context, unitID string, status *entities.TicketStatusType) ([]entities.PaymentTicket, error)
	Transition(ctx context.Context, transition entities.TicketTransition) (*entities.PaymentTicket, error)
	DeleteSettledExpired(ctx context.Context, now time.Time) (int64, error)
}

type CourierReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Eligibility interface {
	IsInLiveQueue(courier *entities.Courier, now time.Time) bool
}

type Notifier interface {
	PaymentCalled(ctx context.Context, ticket *entities.PaymentTicket, courier *entities.Courier) []entities.Warning
}

type EventPublisher interface {
	Publish(ctx context.Context, ev entities.DispatchEvent) error
}

type ticketLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
