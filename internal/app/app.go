package app

import (
	"context"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/internal/handlers/kafka-consumer/dispatch_events"
	"courierqueue/internal/handlers/rest/courier_dispatch_post"
	"courierqueue/internal/handlers/rest/courier_get"
	"courierqueue/internal/handlers/rest/courier_post"
	"courierqueue/internal/handlers/rest/courier_put"
	"courierqueue/internal/handlers/rest/courier_summon_post"
	"courierqueue/internal/handlers/rest/couriers_get"
	"courierqueue/internal/handlers/rest/queue_get"
	"courierqueue/internal/handlers/rest/queue_reorder_post"
	"courierqueue/internal/handlers/rest/ranking_get"
	"courierqueue/internal/handlers/rest/tickets_get"
	"courierqueue/internal/handlers/rest/tickets_post"
	displayService "courierqueue/internal/service/display"
	"courierqueue/pkg/background"
	"courierqueue/pkg/timers"
)

type (
	HousekeepingInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceDispatch   ServiceDispatch
	ServiceTicket     ServiceTicket
	ServiceHistory    ServiceHistory
	Timers            *timers.Registry
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
	queue_get.Service
	queue_reorder_post.Service

	CheckIn(ctx context.Context, id int64) (*entities.TransitionResult, error)
	SkipTurn(ctx context.Context, id int64) (*entities.TransitionResult, error)
}

type ServiceDispatch interface {
	courier_dispatch_post.Service
	courier_summon_post.Service

	Acknowledge(ctx context.Context, courierID int64) (*entities.TransitionResult, error)
	NoShow(ctx context.Context, courierID int64) (*entities.TransitionResult, error)
	Return(ctx context.Context, courierID int64) (*entities.TransitionResult, error)
}

type ServiceTicket interface {
	tickets_post.Service
	tickets_get.Service

	Call(ctx context.Context, ticketID int64) (*entities.TicketResult, error)
	Settle(ctx context.Context, ticketID int64) (*entities.TicketResult, error)
}

type ServiceHistory interface {
	ranking_get.Service
}

// DisplayApp - экранный воркер одного юнита.
type DisplayApp struct {
	Announcer         *displayService.Announcer
	EventsHandler     *dispatch_events.Handler
	Timers            *timers.Registry
	BackgroundWorkers *background.Worker
}
