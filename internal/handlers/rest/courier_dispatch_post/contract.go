//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_dispatch_post_test
package courier_dispatch_post

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
	Dispatch(ctx context.Context, request entities.DispatchRequest) (*entities.DispatchResult, error)
}
