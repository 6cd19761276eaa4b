package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/metrics"
	"courierqueue/pkg/logger"
)

const (
	DefaultTTL           = 12 * time.Hour
	DefaultNotifyTimeout = 5 * time.Second
)

// Ticket - жизненный цикл талона на оплату: waiting -> called -> settled, только вперед.
type Ticket struct {
	log         ticketLogger
	repository  Repository
	couriers    CourierReader
	txManager   TxManager
	eligibility Eligibility
	notifier    Notifier
	publisher   EventPublisher
	ttl         time.Duration
	notify      time.Duration
	now         func() time.Time
}

func New(
	log ticketLogger,
	repository Repository,
	couriers CourierReader,
	txManager TxManager,
	eligibility Eligibility,
	notifier Notifier,
	publisher EventPublisher,
	ttl time.Duration,
) *Ticket {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Ticket{
		log:         log,
		repository:  repository,
		couriers:    couriers,
		txManager:   txManager,
		eligibility: eligibility,
		notifier:    notifier,
		publisher:   publisher,
		ttl:         ttl,
		notify:      DefaultNotifyTimeout,
		now:         time.Now,
	}
}

// WithNotifyTimeout ограничивает оповещения после перехода.
func (s *Ticket) WithNotifyTimeout(d time.Duration) *Ticket {
	if d > 0 {
		s.notify = d
	}
	return s
}

func (s *Ticket) WithClock(now func() time.Time) *Ticket {
	s.now = now
	return s
}

// Issue выдает талон курьеру, который сейчас стоит в живой очереди юнита.
// Номер берется из счетчика юнита в той же транзакции, что и вставка.
func (s *Ticket) Issue(ctx context.Context, unitID string, courierID int64) (*entities.PaymentTicket, error) {
	if err := validateIssue(unitID, courierID); err != nil {
		return nil, err
	}

	now := s.clock()

	holder, err := s.couriers.GetByID(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	if holder.UnitID != unitID {
		return nil, fmt.Errorf("%w: courier %d belongs to %s", ErrUnitMismatch, courierID, holder.UnitID)
	}
	if holder.Status != entities.CourierAvailable || !s.eligibility.IsInLiveQueue(holder, now) {
		return nil, fmt.Errorf("%w: courier %d", ErrCourierNotEligible, courierID)
	}

	var issued *entities.PaymentTicket
	err = s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		number, err := s.repository.NextNumber(ctx, unitID)
		if err != nil {
			return fmt.Errorf("next ticket number: %w", err)
		}

		issued, err = s.repository.Create(ctx, entities.TicketCreate{
			Number:      formatNumber(number),
			UnitID:      unitID,
			FranchiseID: holder.FranchiseID,
			CourierID:   holder.ID,
			CourierName: holder.Name,
			CreatedAt:   now,
			ExpiresAt:   now.Add(s.ttl),
		})
		if err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment ticket issued",
		logger.NewField("ticket_id", issued.ID),
		logger.NewField("number", issued.Number),
		logger.NewField("courier_id", courierID),
		logger.NewField("unit_id", unitID),
	)

	return issued, nil
}

// Call переводит талон waiting -> called, отправляет курьеру сообщение и событие на экран.
func (s *Ticket) Call(ctx context.Context, ticketID int64) (*entities.TicketResult, error) {
	called, err := s.transition(ctx, ticketID, entities.TicketCalled)
	if err != nil {
		return nil, err
	}

	notifyCtx, cancel := s.notifyContext(ctx)
	defer cancel()

	holder := s.holder(notifyCtx, called)

	result := &entities.TicketResult{Ticket: called}
	result.Warnings = append(result.Warnings, s.notifier.PaymentCalled(notifyCtx, called, holder)...)
	result.Warnings = append(result.Warnings, s.publish(notifyCtx, s.ticketEvent(entities.EventTicketCalled, called, s.stamp(called.CalledAt)))...)

	metrics.TransitionsTotal.WithLabelValues("ticket_call").Inc()
	s.log.Info("payment ticket called",
		logger.NewField("ticket_id", called.ID),
		logger.NewField("number", called.Number),
		logger.NewField("warnings", len(result.Warnings)),
	)

	return result, nil
}

// Settle переводит талон called -> settled. Талон остается в списке до уборки.
func (s *Ticket) Settle(ctx context.Context, ticketID int64) (*entities.TicketResult, error) {
	settled, err := s.transition(ctx, ticketID, entities.TicketSettled)
	if err != nil {
		return nil, err
	}

	notifyCtx, cancel := s.notifyContext(ctx)
	defer cancel()

	result := &entities.TicketResult{Ticket: settled}
	result.Warnings = s.publish(notifyCtx, s.ticketEvent(entities.EventTicketSettled, settled, s.stamp(settled.SettledAt)))

	metrics.TransitionsTotal.WithLabelValues("ticket_settle").Inc()
	s.log.Info("payment ticket settled",
		logger.NewField("ticket_id", settled.ID),
		logger.NewField("number", settled.Number),
	)

	return result, nil
}

func (s *Ticket) Get(ctx context.Context, ticketID int64) (*entities.PaymentTicket, error) {
	if ticketID <= 0 {
		return nil, ErrInvalidTicketID
	}

	t, err := s.repository.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

func (s *Ticket) List(ctx context.Context, unitID, status string) ([]entities.PaymentTicket, error) {
	if unitID == "" {
		return nil, ErrMissingRequiredFields
	}

	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repository.ListByUnit(ctx, unitID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// CleanupExpired удаляет оплаченные талоны с истекшим сроком.
func (s *Ticket) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteSettledExpired(ctx, s.clock())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("timed out deleting expired tickets: %w", err)
		}
		return 0, fmt.Errorf("delete expired tickets: %w", err)
	}
	return deleted, nil
}

func (s *Ticket) transition(ctx context.Context, ticketID int64, to entities.TicketStatusType) (*entities.PaymentTicket, error) {
	if ticketID <= 0 {
		return nil, ErrInvalidTicketID
	}

	current, err := s.repository.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	if !current.Status.CanMoveTo(to) {
		return nil, fmt.Errorf("%w: ticket %d is %s, cannot move to %s",
			ErrInvalidTransition, ticketID, current.Status, to)
	}

	moved, err := s.repository.Transition(ctx, entities.TicketTransition{
		ID:   ticketID,
		From: current.Status,
		To:   to,
		At:   s.clock(),
	})
	if err != nil {
		return nil, fmt.Errorf("move ticket to %s: %w", to, err)
	}
	return moved, nil
}

// holder - курьер талона для сообщения. Если курьер удален, сообщение
// уходит в никуда: без телефона канал пропускается.
func (s *Ticket) holder(ctx context.Context, t *entities.PaymentTicket) *entities.Courier {
	fallback := &entities.Courier{UnitID: t.UnitID}
	if t.CourierName != nil {
		fallback.Name = *t.CourierName
	}
	if t.CourierID == nil {
		return fallback
	}

	c, err := s.couriers.GetByID(ctx, *t.CourierID)
	if err != nil {
		s.log.Warn("ticket courier lookup failed",
			logger.NewField("ticket_id", t.ID),
			logger.NewField("courier_id", *t.CourierID),
			logger.NewField("error", err),
		)
		fallback.ID = *t.CourierID
		return fallback
	}
	return c
}

// notifyContext: переход уже зафиксирован, отмена запроса оповещения не прерывает.
func (s *Ticket) notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.notify)
}

func (s *Ticket) publish(ctx context.Context, ev entities.DispatchEvent) []entities.Warning {
	err := s.publisher.Publish(ctx, ev)
	if err == nil {
		return nil
	}

	s.log.Warn("ticket event publish failed",
		logger.NewField("kind", ev.Kind.String()),
		logger.NewField("ticket_id", ev.TicketID),
		logger.NewField("error", err),
	)
	return []entities.Warning{{Channel: entities.ChannelEvents, Message: err.Error()}}
}

func (s *Ticket) ticketEvent(kind entities.DispatchEventKind, t *entities.PaymentTicket, at time.Time) entities.DispatchEvent {
	ev := entities.DispatchEvent{
		Key:          entities.TicketEventKey(t.ID),
		Kind:         kind,
		UnitID:       t.UnitID,
		TicketID:     t.ID,
		TicketNumber: t.Number,
		OccurredAt:   at,
	}
	if t.CourierID != nil {
		ev.CourierID = *t.CourierID
	}
	if t.CourierName != nil {
		ev.CourierName = *t.CourierName
	}
	return ev
}

// stamp - время перехода из БД: по нему экран отличает повторный вызов от дубля.
func (s *Ticket) stamp(at *time.Time) time.Time {
	if at == nil {
		return s.clock()
	}
	return *at
}

func (s *Ticket) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func formatNumber(n int64) string {
	return fmt.Sprintf("%03d", n)
}
