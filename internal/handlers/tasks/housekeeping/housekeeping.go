package housekeeping

import (
	"context"
	"errors"
	"time"

	"courierqueue/pkg/logger"
)

type HistoryService interface {
	CleanupHistory(ctx context.Context) (int64, error)
}

type TicketService interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// Housekeeping удаляет старую историю доставок и оплаченные просроченные талоны.
// Ядро диспетчеризации само ничего не удаляет.
type Housekeeping struct {
	log      logger.Logger
	history  HistoryService
	tickets  TicketService
	interval time.Duration
}

func NewHousekeeping(log logger.Logger, history HistoryService, tickets TicketService, interval time.Duration) *Housekeeping {
	return &Housekeeping{
		log:      log,
		history:  history,
		tickets:  tickets,
		interval: interval,
	}
}

func (h *Housekeeping) TTL() time.Duration {
	return h.interval
}

func (h *Housekeeping) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	historyDeleted, historyErr := h.history.CleanupHistory(ctxWithTimeout)
	ticketsDeleted, ticketsErr := h.tickets.CleanupExpired(ctxWithTimeout)

	if historyDeleted > 0 || ticketsDeleted > 0 {
		h.log.With(
			logger.NewField("history_deleted", historyDeleted),
			logger.NewField("tickets_deleted", ticketsDeleted),
		).Info("housekeeping")
	}

	return errors.Join(historyErr, ticketsErr)
}

func (h *Housekeeping) Info() string {
	return "housekeeping"
}
