//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_transition_post_test
package courier_transition_post

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

// Transition - одно действие над курьером: приход, пропуск хода, забор заказа, неявка или возврат.
type Transition func(ctx context.Context, courierID int64) (*entities.TransitionResult, error)
