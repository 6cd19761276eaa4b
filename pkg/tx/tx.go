package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"courierqueue/pkg/retrier"
	"courierqueue/pkg/retrier/backoff_adapter"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

type Option func(*Manager)

// WithRetrier подменяет политику повтора сериализуемых транзакций.
func WithRetrier(r retrier.Retrier) Option {
	return func(m *Manager) {
		m.retrier = r
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier:  backoff_adapter.New(DefaultRetryConfig()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultRetryConfig - короткие паузы: конфликт двух диспетчеров на одной
// очереди разрешается за несколько миллисекунд.
func DefaultRetryConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      5,
		ShouldRetry:     IsRetryable,
	}
}

// IsRetryable - ошибка, после которой транзакцию можно просто перезапустить.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do - переходы статусов курьера, где важна сериализуемость чтения очереди.
// Транзакция, проигравшая конфликт сериализации, перезапускается целиком.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
}

// DoReadCommitted - для счетчиков на upsert: конкурентные выдачи талонов
// ждут блокировку строки, а не падают с serialization failure.
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}
