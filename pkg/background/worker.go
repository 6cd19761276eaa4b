package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"courierqueue/pkg/logger"
)

var (
	taskRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courierqueue_background_task_runs_total",
			Help: "Background task executions by outcome",
		},
		[]string{"task", "outcome"},
	)

	taskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courierqueue_background_task_duration_seconds",
			Help:    "Duration of background task executions",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL - пауза между концом одного запуска и началом следующего.
	TTL() time.Duration

	Do(context.Context) error

	// Info - имя задачи для логов и метрик.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Worker struct {
	log workerLogger
	wg  sync.WaitGroup
}

// New выполняет каждую задачу один раз синхронно и, если прогрев прошел,
// запускает их в фоне до отмены ctx. Ошибка или паника на прогреве
// возвращается вызывающему, Worker при этом не создается.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{log: log}

	if err := w.warmUp(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		w.wg.Add(1)
		go w.loop(ctx, task)
	}
	return w, nil
}

// Wait ждет, пока все задачи вернутся после отмены ctx.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) warmUp(ctx context.Context, tasks []Task) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		group.Go(func() error {
			w.log.Info("initializing", logger.NewField("task", task.Info()))
			return w.run(groupCtx, task)
		})
	}
	return group.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	defer w.wg.Done()

	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}

	timer := time.NewTimer(ttl)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task", logger.NewField("task", task.Info()))
			return
		case <-timer.C:
			if err := w.run(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
			timer.Reset(ttl)
		}
	}
}

// run выполняет задачу один раз, превращая панику в ошибку.
func (w *Worker) run(ctx context.Context, task Task) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %s panicked: %v", task.Info(), r)
		}

		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		taskRuns.WithLabelValues(task.Info(), outcome).Inc()
		taskDuration.WithLabelValues(task.Info()).Observe(time.Since(start).Seconds())
	}()

	return task.Do(ctx)
}
