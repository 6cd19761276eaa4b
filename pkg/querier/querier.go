package querier

import (
	"context"
	"strconv"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "courierqueue_db_query_duration_seconds",
		Help:    "Duration of Exec and Query calls, split by transaction membership",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"op", "in_tx"},
)

// Querier отдает репозиториям транзакцию из контекста, если она открыта
// менеджером транзакций, и пул соединений в остальных случаях.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	executor, inTx := q.executor(ctx)
	defer observe("exec", inTx, time.Now())
	return executor.Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	executor, inTx := q.executor(ctx)
	defer observe("query", inTx, time.Now())
	return executor.Query(ctx, sql, args...)
}

// QueryRow не измеряется: запрос выполняется лениво, в Scan.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	executor, _ := q.executor(ctx)
	return executor.QueryRow(ctx, sql, args...)
}

func (q *Querier) executor(ctx context.Context) (pgxv5.Tr, bool) {
	tr := q.getter.DefaultTrOrDB(ctx, q.pool)
	return tr, tr != pgxv5.Tr(q.pool)
}

func observe(op string, inTx bool, start time.Time) {
	queryDuration.WithLabelValues(op, strconv.FormatBool(inTx)).Observe(time.Since(start).Seconds())
}
