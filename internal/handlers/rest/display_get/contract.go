//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=display_get_test
package display_get

import (
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

type Announcer interface {
	Current() entities.Announcement
	Pending() int
}
