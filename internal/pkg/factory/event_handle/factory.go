package event_handle

import (
	"context"
	"fmt"

	"courierqueue/internal/entities"
	"courierqueue/internal/service/display"
)

type EventHandlerFactory struct {
	announcements display.Announcements
}

func NewEventHandlerFactory(announcements display.Announcements) *EventHandlerFactory {
	return &EventHandlerFactory{
		announcements: announcements,
	}
}

func (f *EventHandlerFactory) GetHandler(kind entities.DispatchEventKind) (display.ExecuteFn, error) {
	switch kind {
	case entities.EventCourierCalled, entities.EventTicketCalled:
		return f.calledHandler, nil
	case entities.EventCourierAcknowledged,
		entities.EventCourierNoShow,
		entities.EventCourierReturned,
		entities.EventTicketSettled:
		return f.withdrawHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", display.ErrUndefinedKind, kind)
	}
}

// calledHandler ставит вызов в очередь экрана. Дубль push/poll просто пропускается.
func (f *EventHandlerFactory) calledHandler(_ context.Context, ev entities.DispatchEvent) error {
	f.announcements.Enqueue(ev)
	return nil
}

// withdrawHandler: сущность ушла из called раньше, чем экран успел ее объявить.
func (f *EventHandlerFactory) withdrawHandler(_ context.Context, ev entities.DispatchEvent) error {
	f.announcements.Withdraw(ev.Key)
	return nil
}
