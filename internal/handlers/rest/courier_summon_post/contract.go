//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_summon_post_test
package courier_summon_post

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

type Service interface {
	Summon(ctx context.Context, courierID int64, reason string) (*entities.TransitionResult, error)
}
