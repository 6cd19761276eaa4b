//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_transition_post_test
package ticket_transition_post

import (
	"context"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Transition - вызов или погашение талона.
type Transition func(ctx context.Context, ticketID int64) (*entities.TicketResult, error)
