//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_events_test
package dispatch_events

import (
	"context"

	"courierqueue/internal/entities"
)

type Service interface {
	ProcessEvent(ctx context.Context, ev entities.DispatchEvent) error
}
