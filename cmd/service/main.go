package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	application "courierqueue/internal/app"
	"courierqueue/internal/handlers/rest/courier_dispatch_post"
	"courierqueue/internal/handlers/rest/courier_get"
	"courierqueue/internal/handlers/rest/courier_post"
	"courierqueue/internal/handlers/rest/courier_put"
	"courierqueue/internal/handlers/rest/courier_summon_post"
	"courierqueue/internal/handlers/rest/courier_transition_post"
	"courierqueue/internal/handlers/rest/couriers_get"
	"courierqueue/internal/handlers/rest/healthcheck_head"
	"courierqueue/internal/handlers/rest/ping_get"
	"courierqueue/internal/handlers/rest/queue_get"
	"courierqueue/internal/handlers/rest/queue_reorder_post"
	"courierqueue/internal/handlers/rest/ranking_get"
	"courierqueue/internal/handlers/rest/ticket_transition_post"
	"courierqueue/internal/handlers/rest/tickets_get"
	"courierqueue/internal/handlers/rest/tickets_post"
	"courierqueue/internal/pkg/config"
	"courierqueue/internal/pkg/dotenv"
	"courierqueue/internal/pkg/kafka"
	metrics_system "courierqueue/internal/pkg/metrics"
	"courierqueue/internal/pkg/middlewares/graceful_shutdown"
	"courierqueue/internal/pkg/middlewares/metrics"
	"courierqueue/internal/pkg/middlewares/rate_limiter"
	"courierqueue/internal/pkg/middlewares/timeout"
	"courierqueue/internal/pkg/postgres"
	"courierqueue/internal/pkg/redis"
	"courierqueue/pkg/logger"
	"courierqueue/pkg/logger/zap_adapter"
	"courierqueue/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting courierqueue dispatch service")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	if err := dotenv.ApplyFlags(); err != nil {
		mainLog.Error("apply command line flags", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := zapLogger.SetLevel(cfg.LogLevel); err != nil {
		mainLog.Warn("invalid LOG_LEVEL, keeping info", logger.NewField("error", err))
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, kafka.SplitBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	// таймеры пре-алерта и окна неявки не должны срабатывать после остановки
	defer businessApp.Timers.Close()

	metrics_system.StartSystemMetricsCollector(ctx, pool)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, healthProbes(pool, redisClient), businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	businessApp.BackgroundWorkers.Wait()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, probes map[string]healthcheck_head.Probe, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.New(float64(cfg.RateLimiterQPS), cfg.RateLimiterBurst)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, probes)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/courier", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/courier", courier_put.New(log, app.ServiceCourier)).Methods("PUT")
	router.Handle("/courier/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")

	router.Handle("/units/{unit}/queue", queue_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/units/{unit}/queue/reorder", queue_reorder_post.New(log, app.ServiceCourier)).Methods("POST")

	router.Handle("/courier/{id}/checkin", courier_transition_post.New(log, "checkin", app.ServiceCourier.CheckIn)).Methods("POST")
	router.Handle("/courier/{id}/skip", courier_transition_post.New(log, "skip", app.ServiceCourier.SkipTurn)).Methods("POST")
	router.Handle("/courier/{id}/dispatch", courier_dispatch_post.New(log, app.ServiceDispatch)).Methods("POST")
	router.Handle("/courier/{id}/acknowledge", courier_transition_post.New(log, "acknowledge", app.ServiceDispatch.Acknowledge)).Methods("POST")
	router.Handle("/courier/{id}/no-show", courier_transition_post.New(log, "no-show", app.ServiceDispatch.NoShow)).Methods("POST")
	router.Handle("/courier/{id}/return", courier_transition_post.New(log, "return", app.ServiceDispatch.Return)).Methods("POST")
	router.Handle("/courier/{id}/summon", courier_summon_post.New(log, app.ServiceDispatch)).Methods("POST")

	router.Handle("/units/{unit}/tickets", tickets_post.New(log, app.ServiceTicket)).Methods("POST")
	router.Handle("/units/{unit}/tickets", tickets_get.New(log, app.ServiceTicket)).Methods("GET")
	router.Handle("/tickets/{id}/call", ticket_transition_post.New(log, "call", app.ServiceTicket.Call)).Methods("POST")
	router.Handle("/tickets/{id}/settle", ticket_transition_post.New(log, "settle", app.ServiceTicket.Settle)).Methods("POST")

	router.Handle("/units/{unit}/ranking", ranking_get.New(log, app.ServiceHistory)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

func healthProbes(pool *pgxpool.Pool, redisClient *goredis.Client) map[string]healthcheck_head.Probe {
	probes := map[string]healthcheck_head.Probe{
		"postgres": pool.Ping,
	}
	if redisClient != nil {
		probes["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	return probes
}
