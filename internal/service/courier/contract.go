//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"
	"time"

	"courierqueue/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetAll(ctx context.Context, unitID string) ([]entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	ListActiveByStatus(ctx context.Context, unitID string, status entities.CourierStatusType) ([]entities.Courier, error)
	SetQueueKeys(ctx context.Context, unitID string, keys map[int64]time.Time) (int64, error)
	Transition(ctx context.Context, transition entities.CourierTransition) (*entities.Courier, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Eligibility interface {
	IsInLiveQueue(courier *entities.Courier, now time.Time) bool
	Filter(couriers []entities.Courier, now time.Time) []entities.Courier
}

type TimerCanceller interface {
	Cancel(key string) bool
}
