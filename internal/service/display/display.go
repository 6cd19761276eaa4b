package display

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

// Service принимает события вызова из двух источников: push из шины и опрос БД.
type Service struct {
	log           displayLogger
	unitID        string
	announcements Announcements
	factory       HandlerFactory
	couriers      CourierLister
	tickets       TicketLister
}

func New(
	log displayLogger,
	unitID string,
	announcements Announcements,
	factory HandlerFactory,
	couriers CourierLister,
	tickets TicketLister,
) *Service {
	return &Service{
		log:           log,
		unitID:        unitID,
		announcements: announcements,
		factory:       factory,
		couriers:      couriers,
		tickets:       tickets,
	}
}

// ProcessEvent применяет одно событие шины. События других юнитов и
// неизвестные виды пропускаются.
func (s *Service) ProcessEvent(ctx context.Context, ev entities.DispatchEvent) error {
	if ev.UnitID != s.unitID {
		return fmt.Errorf("%w: %s", ErrForeignUnit, ev.UnitID)
	}

	executeFn, err := s.factory.GetHandler(ev.Kind)
	if err != nil {
		if errors.Is(err, ErrUndefinedKind) {
			return nil
		}
		return err
	}

	return executeFn(ctx, ev)
}

// Poll - запасной канал на случай потерянного push: читает текущих вызванных
// курьеров и талоны, ставит новые переходы в очередь и снимает устаревшие метки.
// Возвращает число принятых событий.
func (s *Service) Poll(ctx context.Context) (int, error) {
	couriers, err := s.couriers.ListActiveByStatus(ctx, s.unitID, entities.CourierCalled)
	if err != nil {
		return 0, fmt.Errorf("list called couriers: %w", err)
	}

	calledStatus := entities.TicketCalled
	tickets, err := s.tickets.ListByUnit(ctx, s.unitID, &calledStatus)
	if err != nil {
		return 0, fmt.Errorf("list called tickets: %w", err)
	}

	present := make(map[string]struct{}, len(couriers)+len(tickets))
	accepted := 0

	for i := range couriers {
		// без called_at нельзя отличить повтор от нового вызова
		if couriers[i].CalledAt == nil {
			continue
		}
		ev := courierCalledEvent(&couriers[i])
		present[ev.Key] = struct{}{}
		if s.announcements.Enqueue(ev) {
			accepted++
		}
	}

	for i := range tickets {
		ev := ticketCalledEvent(&tickets[i])
		present[ev.Key] = struct{}{}
		if s.announcements.Enqueue(ev) {
			accepted++
		}
	}

	pruned := s.announcements.Prune(present)
	if accepted > 0 || pruned > 0 {
		s.log.Info("display poll",
			logger.NewField("unit_id", s.unitID),
			logger.NewField("accepted", accepted),
			logger.NewField("pruned", pruned),
		)
	}

	return accepted, nil
}

func courierCalledEvent(c *entities.Courier) entities.DispatchEvent {
	ev := entities.DispatchEvent{
		Key:         entities.CourierEventKey(c.ID),
		Kind:        entities.EventCourierCalled,
		UnitID:      c.UnitID,
		CourierID:   c.ID,
		CourierName: c.Name,
		OccurredAt:  normalize(*c.CalledAt),
	}
	if c.BagType != nil {
		ev.BagType = *c.BagType
	}
	return ev
}

func ticketCalledEvent(t *entities.PaymentTicket) entities.DispatchEvent {
	ev := entities.DispatchEvent{
		Key:          entities.TicketEventKey(t.ID),
		Kind:         entities.EventTicketCalled,
		UnitID:       t.UnitID,
		TicketID:     t.ID,
		TicketNumber: t.Number,
	}
	if t.CalledAt != nil {
		ev.OccurredAt = normalize(*t.CalledAt)
	}
	if t.CourierID != nil {
		ev.CourierID = *t.CourierID
	}
	if t.CourierName != nil {
		ev.CourierName = *t.CourierName
	}
	return ev
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
