//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	ListActiveByStatus(ctx context.Context, unitID string, status entities.CourierStatusType) ([]entities.Courier, error)
	Transition(ctx context.Context, transition entities.CourierTransition) (*entities.Courier, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, record entities.DeliveryHistoryCreate) (*entities.DeliveryHistoryRecord, error)
	MarkReturned(ctx context.Context, courierID int64, returnedAt time.Time) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Eligibility interface {
	IsInLiveQueue(courier *entities.Courier, now time.Time) bool
	Filter(couriers []entities.Courier, now time.Time) []entities.Courier
}

type Notifier interface {
	Dispatched(ctx context.Context, courier *entities.Courier, request entities.DispatchRequest, dispatchedAt time.Time) []entities.Warning
	PreAlert(ctx context.Context, courier *entities.Courier) []entities.Warning
	Returned(ctx context.Context, courier *entities.Courier, position int) []entities.Warning
	Summoned(ctx context.Context, courier *entities.Courier, reason string) []entities.Warning
}

type EventPublisher interface {
	Publish(ctx context.Context, ev entities.DispatchEvent) error
}

type Scheduler interface {
	Schedule(key string, d time.Duration, fn func()) bool
	Cancel(key string) bool
}

type dispatchLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
