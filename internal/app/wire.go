//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"courierqueue/internal/handlers/kafka-consumer/dispatch_events"
	"courierqueue/internal/handlers/tasks/display_poll"
	"courierqueue/internal/handlers/tasks/housekeeping"
	"courierqueue/internal/pkg/config"
	"courierqueue/internal/pkg/factory/event_handle"
	"courierqueue/internal/pkg/factory/phrase"
	"courierqueue/internal/pkg/kafka"
	courierRepo "courierqueue/internal/repository/courier"
	historyRepo "courierqueue/internal/repository/history"
	ticketRepo "courierqueue/internal/repository/ticket"
	unitRepo "courierqueue/internal/repository/unit"
	courierService "courierqueue/internal/service/courier"
	dispatchService "courierqueue/internal/service/dispatch"
	displayService "courierqueue/internal/service/display"
	historyService "courierqueue/internal/service/history"
	ticketService "courierqueue/internal/service/ticket"
	"courierqueue/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		coreSet,

		provideHistoryService,
		provideHousekeepingInterval,
		provideHousekeepingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceTicket), new(*ticketService.Ticket)),
		wire.Bind(new(ServiceHistory), new(*historyService.History)),

		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),
		wire.Bind(new(housekeeping.HistoryService), new(*historyService.History)),
		wire.Bind(new(housekeeping.TicketService), new(*ticketService.Ticket)),
	)
	return &Application{}, nil
}

// InitializeDisplayApp для экранного воркера (cmd/worker-display)
func InitializeDisplayApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*DisplayApp, error) {
	wire.Build(
		coreSet,

		phrase.New,
		provideSpeaker,
		provideAnnouncer,
		provideDisplayService,
		event_handle.NewEventHandlerFactory,
		provideDispatchEventsHandler,
		provideDisplayPollTask,
		provideDisplayTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(DisplayApp), "*"),

		wire.Bind(new(displayService.Acknowledger), new(*dispatchService.Dispatch)),
		wire.Bind(new(displayService.SettingsReader), new(*unitRepo.Cache)),
		wire.Bind(new(displayService.PhraseFactory), new(*phrase.PhraseFactory)),
		wire.Bind(new(displayService.Announcements), new(*displayService.Announcer)),
		wire.Bind(new(displayService.HandlerFactory), new(*event_handle.EventHandlerFactory)),
		wire.Bind(new(displayService.CourierLister), new(*courierRepo.Repository)),
		wire.Bind(new(displayService.TicketLister), new(*ticketRepo.Repository)),
		wire.Bind(new(dispatch_events.Service), new(*displayService.Service)),
		wire.Bind(new(display_poll.Service), new(*displayService.Service)),
	)
	return &DisplayApp{}, nil
}
