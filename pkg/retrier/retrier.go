package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждым повтором с ошибкой попытки и паузой до следующей.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - число попыток ограничено только MaxElapsedTime
	MaxRetries uint64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}
