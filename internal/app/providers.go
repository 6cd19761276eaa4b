package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"courierqueue/internal/gateway/http/messenger"
	"courierqueue/internal/gateway/http/webhook"
	eventsGateway "courierqueue/internal/gateway/kafka/events"
	"courierqueue/internal/handlers/kafka-consumer/dispatch_events"
	"courierqueue/internal/handlers/tasks/display_poll"
	"courierqueue/internal/handlers/tasks/housekeeping"
	"courierqueue/internal/pkg/config"
	"courierqueue/internal/pkg/eligibility"
	"courierqueue/internal/pkg/kafka"
	courierRepo "courierqueue/internal/repository/courier"
	historyRepo "courierqueue/internal/repository/history"
	ticketRepo "courierqueue/internal/repository/ticket"
	unitRepo "courierqueue/internal/repository/unit"
	courierService "courierqueue/internal/service/courier"
	dispatchService "courierqueue/internal/service/dispatch"
	displayService "courierqueue/internal/service/display"
	historyService "courierqueue/internal/service/history"
	"courierqueue/internal/service/notification"
	ticketService "courierqueue/internal/service/ticket"
	"courierqueue/pkg/background"
	"courierqueue/pkg/logger"
	"courierqueue/pkg/querier"
	"courierqueue/pkg/timers"
	"courierqueue/pkg/tx"
)

// coreSet - машины состояний и их зависимости, общие для обоих бинарей.
var coreSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	timers.NewRegistry,
	provideEligibility,

	provideCourierRepository,
	provideHistoryRepository,
	provideTicketRepository,
	provideUnitRepository,
	provideUnitCache,

	provideWebhookGateway,
	provideMessengerGateway,
	provideEventPublisher,
	provideNotificationFanout,

	provideServiceCourier,
	provideServiceDispatch,
	provideServiceTicket,

	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
	wire.Bind(new(courierService.Eligibility), new(*eligibility.Predicate)),
	wire.Bind(new(courierService.TimerCanceller), new(*timers.Registry)),

	wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
	wire.Bind(new(dispatchService.HistoryRepository), new(*historyRepo.Repository)),
	wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
	wire.Bind(new(dispatchService.Eligibility), new(*eligibility.Predicate)),
	wire.Bind(new(dispatchService.Notifier), new(*notification.Fanout)),
	wire.Bind(new(dispatchService.EventPublisher), new(*eventsGateway.Publisher)),
	wire.Bind(new(dispatchService.Scheduler), new(*timers.Registry)),

	wire.Bind(new(ticketService.Repository), new(*ticketRepo.Repository)),
	wire.Bind(new(ticketService.CourierReader), new(*courierRepo.Repository)),
	wire.Bind(new(ticketService.TxManager), new(*tx.Manager)),
	wire.Bind(new(ticketService.Eligibility), new(*eligibility.Predicate)),
	wire.Bind(new(ticketService.Notifier), new(*notification.Fanout)),
	wire.Bind(new(ticketService.EventPublisher), new(*eventsGateway.Publisher)),

	wire.Bind(new(notification.SettingsReader), new(*unitRepo.Cache)),
	wire.Bind(new(notification.WebhookSender), new(*webhook.WebhookGateway)),
	wire.Bind(new(notification.MessageSender), new(*messenger.MessengerGateway)),
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideEligibility(cfg *config.Config) *eligibility.Predicate {
	return eligibility.New(
		cfg.Dispatch.ShiftStart,
		cfg.Dispatch.ShiftEnd,
		cfg.Dispatch.Location,
		cfg.Dispatch.CheckInOverride,
	)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideTicketRepository(querier *querier.Querier) *ticketRepo.Repository {
	return ticketRepo.New(querier)
}

func provideUnitRepository(querier *querier.Querier) *unitRepo.Repository {
	return unitRepo.New(querier)
}

// provideUnitCache: redisClient может быть nil, тогда кэш читает напрямую из БД.
func provideUnitCache(log logger.Logger, redisClient *goredis.Client, source *unitRepo.Repository, cfg *config.Config) *unitRepo.Cache {
	return unitRepo.NewCache(log, redisClient, source, cfg.Redis.SettingsTTL)
}

func provideWebhookGateway(cfg *config.Config) *webhook.WebhookGateway {
	timeout := cfg.Messaging.OutboundTimeout
	return webhook.New(webhook.NewClient(timeout), timeout)
}

func provideMessengerGateway(cfg *config.Config) *messenger.MessengerGateway {
	timeout := cfg.Messaging.OutboundTimeout
	return messenger.New(messenger.NewClient(timeout), cfg.Messaging.APIURL, cfg.Messaging.APIToken, timeout)
}

func provideEventPublisher(producer *kafka.Producer, cfg *config.Config) *eventsGateway.Publisher {
	return eventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideNotificationFanout(
	log logger.Logger,
	settings notification.SettingsReader,
	webhookSender notification.WebhookSender,
	messageSender notification.MessageSender,
) *notification.Fanout {
	return notification.New(log, settings, webhookSender, messageSender)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
	predicate courierService.Eligibility,
	registry courierService.TimerCanceller,
) *courierService.Courier {
	return courierService.New(repository, txManager, predicate, registry)
}

func provideServiceDispatch(
	log logger.Logger,
	couriers dispatchService.CourierRepository,
	history dispatchService.HistoryRepository,
	txManager dispatchService.TxManager,
	predicate dispatchService.Eligibility,
	notifier dispatchService.Notifier,
	publisher dispatchService.EventPublisher,
	scheduler dispatchService.Scheduler,
	cfg *config.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
		log,
		couriers,
		history,
		txManager,
		predicate,
		notifier,
		publisher,
		scheduler,
		dispatchService.Config{
			PreAlertDelay: cfg.Dispatch.PreAlertDelay,
			NoShowWindow:  cfg.Dispatch.NoShowWindow,
			NotifyTimeout: cfg.Dispatch.NotifyTimeout,
		},
	)
}

func provideServiceTicket(
	log logger.Logger,
	repository ticketService.Repository,
	couriers ticketService.CourierReader,
	txManager ticketService.TxManager,
	predicate ticketService.Eligibility,
	notifier ticketService.Notifier,
	publisher ticketService.EventPublisher,
	cfg *config.Config,
) *ticketService.Ticket {
	return ticketService.New(log, repository, couriers, txManager, predicate, notifier, publisher, cfg.Tickets.TTL).
		WithNotifyTimeout(cfg.Dispatch.NotifyTimeout)
}

func provideHistoryService(repository historyService.Repository, cfg *config.Config) *historyService.History {
	return historyService.New(repository, cfg.Tasks.HistoryRetention)
}

func provideHousekeepingInterval(cfg *config.Config) HousekeepingInterval {
	return HousekeepingInterval(cfg.Tasks.HousekeepingInterval)
}

func provideHousekeepingTask(
	log logger.Logger,
	history housekeeping.HistoryService,
	tickets housekeeping.TicketService,
	interval HousekeepingInterval,
) *housekeeping.Housekeeping {
	return housekeeping.NewHousekeeping(log, history, tickets, time.Duration(interval))
}

func provideTaskList(
	housekeepingTask *housekeeping.Housekeeping,
) []background.Task {
	return []background.Task{
		housekeepingTask,
	}
}

// provideSpeaker: при выключенной речи возвращается nil, экран работает без голоса.
func provideSpeaker(log logger.Logger, cfg *config.Config) displayService.Speaker {
	if !cfg.Display.SpeechEnabled {
		return nil
	}
	return displayService.NewLogSpeaker(log)
}

func provideAnnouncer(
	log logger.Logger,
	settings displayService.SettingsReader,
	phrases displayService.PhraseFactory,
	speaker displayService.Speaker,
	acknowledger displayService.Acknowledger,
	cfg *config.Config,
) *displayService.Announcer {
	return displayService.NewAnnouncer(log, settings, phrases, speaker, acknowledger, displayService.Config{
		UnitID:         cfg.Display.UnitID,
		MinSpacing:     cfg.Display.MinSpacing,
		TeaserDuration: cfg.Display.TeaserDuration,
		CallDuration:   cfg.Display.CallDuration,
	})
}

func provideDisplayService(
	log logger.Logger,
	announcements displayService.Announcements,
	factory displayService.HandlerFactory,
	couriers displayService.CourierLister,
	tickets displayService.TicketLister,
	cfg *config.Config,
) *displayService.Service {
	return displayService.New(log, cfg.Display.UnitID, announcements, factory, couriers, tickets)
}

func provideDispatchEventsHandler(log logger.Logger, service dispatch_events.Service, cfg *config.Config) *dispatch_events.Handler {
	return dispatch_events.New(log, service, cfg.Kafka.Handlers.DispatchEvents.ProcessTimeout)
}

func provideDisplayPollTask(service display_poll.Service, cfg *config.Config) *display_poll.DisplayPoll {
	return display_poll.NewDisplayPoll(service, cfg.Display.PollInterval)
}

func provideDisplayTaskList(
	pollTask *display_poll.DisplayPoll,
) []background.Task {
	return []background.Task{
		pollTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
