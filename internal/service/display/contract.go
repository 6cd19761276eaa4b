//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=display_test
package display

import (
	"context"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

// Acknowledger - запасной перевод called -> delivering после объявления.
// Переход касается только объявленного вызова.
type Acknowledger interface {
	AcknowledgeCall(ctx context.Context, courierID int64, calledAt time.Time) (*entities.TransitionResult, error)
}

type SettingsReader interface {
	Get(ctx context.Context, unitID string) (*entities.UnitSettings, error)
}

type Speaker interface {
	Speak(ctx context.Context, text string) error
}

type PhraseFactory interface {
	Build(ev entities.DispatchEvent, settings *entities.UnitSettings) entities.Phrases
}

type CourierLister interface {
	ListActiveByStatus(ctx context.Context, unitID string, status entities.CourierStatusType) ([]entities.Courier, error)
}

type TicketLister interface {
	ListByUnit(ctx context.Context, unitID string, status *entities.TicketStatusType) ([]entities.PaymentTicket, error)
}

type Announcements interface {
	Enqueue(ev entities.DispatchEvent) bool
	Withdraw(key string) bool
	Prune(present map[string]struct{}) int
}

type (
	ExecuteFn      func(ctx context.Context, ev entities.DispatchEvent) error
	HandlerFactory interface {
		GetHandler(kind entities.DispatchEventKind) (ExecuteFn, error)
	}
)

type displayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
