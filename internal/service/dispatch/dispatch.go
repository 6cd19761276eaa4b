package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/metrics"
	"courierqueue/internal/pkg/ordering"
	"courierqueue/internal/service/courier"
	"courierqueue/internal/service/history"
	"courierqueue/pkg/logger"
)

const (
	DefaultPreAlertDelay = 5 * time.Second
	DefaultNoShowWindow  = 5 * time.Second
	DefaultNotifyTimeout = 5 * time.Second
)

type Config struct {
	PreAlertDelay time.Duration
	NoShowWindow  time.Duration
	NotifyTimeout time.Duration
}

// Dispatch - машина состояний курьера: available -> called -> delivering -> available.
// Переход фиксируется в БД до любых оповещений; сбой оповещения не откатывает переход.
type Dispatch struct {
	log         dispatchLogger
	couriers    CourierRepository
	history     HistoryRepository
	txManager   TxManager
	eligibility Eligibility
	notifier    Notifier
	publisher   EventPublisher
	timers      Scheduler
	cfg         Config
	now         func() time.Time
}

func New(
	log dispatchLogger,
	couriers CourierRepository,
	historyRepository HistoryRepository,
	txManager TxManager,
	eligibility Eligibility,
	notifier Notifier,
	publisher EventPublisher,
	timers Scheduler,
	cfg Config,
) *Dispatch {
	if cfg.PreAlertDelay <= 0 {
		cfg.PreAlertDelay = DefaultPreAlertDelay
	}
	if cfg.NoShowWindow <= 0 {
		cfg.NoShowWindow = DefaultNoShowWindow
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = DefaultNotifyTimeout
	}

	return &Dispatch{
		log:         log,
		couriers:    couriers,
		history:     historyRepository,
		txManager:   txManager,
		eligibility: eligibility,
		notifier:    notifier,
		publisher:   publisher,
		timers:      timers,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (d *Dispatch) WithClock(now func() time.Time) *Dispatch {
	d.now = now
	return d
}

// Dispatch вызывает свободного курьера: available -> called.
// Второй одновременный вызов того же курьера получает ErrInvalidTransition и ничего не рассылает.
func (d *Dispatch) Dispatch(ctx context.Context, request entities.DispatchRequest) (*entities.DispatchResult, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	now := d.clock()

	var (
		called *entities.Courier
		record *entities.DeliveryHistoryRecord
		next   *entities.Courier
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.couriers.GetByID(ctx, request.CourierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if !current.Active {
			return courier.ErrCourierSuspended
		}

		called, err = d.couriers.Transition(ctx, entities.CourierTransition{
			ID:      request.CourierID,
			From:    entities.CourierAvailable,
			To:       entities.CourierCalled,
			At:       now,
			BagType:  &request.BagType,
			CalledAt: &now,
		})
		if err != nil {
			return fmt.Errorf("call courier: %w", err)
		}

		record, err = d.history.Create(ctx, entities.DeliveryHistoryCreate{
			CourierID:     called.ID,
			UnitID:        called.UnitID,
			BagType:       request.BagType,
			DeliveryCount: request.DeliveryCount,
			HasBeverage:   request.HasBeverage,
			CreatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create delivery history: %w", err)
		}

		view, err := d.queue(ctx, called.UnitID, now)
		if err != nil {
			return err
		}
		next = view.Next()
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.timers.Cancel(entities.PreAlertTimerKey(called.ID))
	calledSnapshot := *called
	d.timers.Schedule(entities.NoShowTimerKey(called.ID), d.cfg.NoShowWindow, func() {
		d.noShowWindowClosed(&calledSnapshot, now)
	})

	result := &entities.DispatchResult{
		Courier:      called,
		History:      record,
		DispatchedAt: now,
	}

	if next != nil {
		nextID, unitID := next.ID, called.UnitID
		d.timers.Schedule(entities.PreAlertTimerKey(nextID), d.cfg.PreAlertDelay, func() {
			d.preAlert(unitID, nextID)
		})
		result.PreAlertFor = &nextID
	}

	notifyCtx, cancel := d.notifyContext(ctx)
	defer cancel()

	result.Warnings = append(result.Warnings, d.notifier.Dispatched(notifyCtx, called, request, now)...)
	result.Warnings = append(result.Warnings, d.publish(notifyCtx, d.courierEvent(entities.EventCourierCalled, called, now))...)

	metrics.TransitionsTotal.WithLabelValues("dispatch").Inc()
	d.log.Info("courier dispatched",
		logger.NewField("courier_id", called.ID),
		logger.NewField("unit_id", called.UnitID),
		logger.NewField("delivery_count", request.DeliveryCount),
		logger.NewField("bag", request.BagType),
		logger.NewField("warnings", len(result.Warnings)),
	)

	return result, nil
}

// Acknowledge - курьер забрал заказ: called -> delivering. Таймер неявки снимается.
func (d *Dispatch) Acknowledge(ctx context.Context, courierID int64) (*entities.TransitionResult, error) {
	return d.acknowledge(ctx, courierID, nil)
}

// AcknowledgeCall - то же, но только для вызова calledAt. Если курьера
// успели вернуть и вызвать снова, возвращается ErrInvalidTransition.
func (d *Dispatch) AcknowledgeCall(ctx context.Context, courierID int64, calledAt time.Time) (*entities.TransitionResult, error) {
	return d.acknowledge(ctx, courierID, &calledAt)
}

func (d *Dispatch) acknowledge(ctx context.Context, courierID int64, call *time.Time) (*entities.TransitionResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	now := d.clock()

	delivering, err := d.couriers.Transition(ctx, entities.CourierTransition{
		ID:            courierID,
		From:          entities.CourierCalled,
		To:            entities.CourierDelivering,
		At:            now,
		DepartureTime: &now,
		OfCall:        call,
	})
	if err != nil {
		return nil, fmt.Errorf("acknowledge courier: %w", err)
	}

	d.timers.Cancel(entities.NoShowTimerKey(courierID))

	notifyCtx, cancel := d.notifyContext(ctx)
	defer cancel()

	result := &entities.TransitionResult{Courier: delivering}
	result.Warnings = d.publish(notifyCtx, d.courierEvent(entities.EventCourierAcknowledged, delivering, now))

	metrics.TransitionsTotal.WithLabelValues("acknowledge").Inc()
	d.log.Info("courier acknowledged",
		logger.NewField("courier_id", courierID),
		logger.NewField("unit_id", delivering.UnitID),
	)

	return result, nil
}

// NoShow возвращает не явившегося курьера в начало очереди: called -> available.
func (d *Dispatch) NoShow(ctx context.Context, courierID int64) (*entities.TransitionResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	now := d.clock()
	front := ordering.FrontOfQueueKey

	var result entities.TransitionResult
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		available, err := d.couriers.Transition(ctx, entities.CourierTransition{
			ID:               courierID,
			From:             entities.CourierCalled,
			To:               entities.CourierAvailable,
			At:               now,
			QueuePositionKey: &front,
		})
		if err != nil {
			return fmt.Errorf("reposition courier: %w", err)
		}

		view, err := d.queue(ctx, available.UnitID, now)
		if err != nil {
			return err
		}

		result = entities.TransitionResult{
			Courier:  available,
			Position: view.Position(available.ID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.timers.Cancel(entities.NoShowTimerKey(courierID))

	notifyCtx, cancel := d.notifyContext(ctx)
	defer cancel()

	result.Warnings = d.publish(notifyCtx, d.courierEvent(entities.EventCourierNoShow, result.Courier, now))

	metrics.TransitionsTotal.WithLabelValues("no_show").Inc()
	d.log.Info("courier marked as no-show",
		logger.NewField("courier_id", courierID),
		logger.NewField("position", result.Position),
	)

	return &result, nil
}

// Return - курьер вернулся с доставки: delivering -> available, в конец очереди.
func (d *Dispatch) Return(ctx context.Context, courierID int64) (*entities.TransitionResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	now := d.clock()
	back := ordering.BackOfQueueKey(now)

	var result entities.TransitionResult
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		available, err := d.couriers.Transition(ctx, entities.CourierTransition{
			ID:               courierID,
			From:             entities.CourierDelivering,
			To:               entities.CourierAvailable,
			At:               now,
			QueuePositionKey: &back,
			ClearDeparture:   true,
		})
		if err != nil {
			return fmt.Errorf("return courier: %w", err)
		}

		err = d.history.MarkReturned(ctx, courierID, now)
		if err != nil && !errors.Is(err, history.ErrOpenRecordNotFound) {
			return fmt.Errorf("mark delivery returned: %w", err)
		}

		view, err := d.queue(ctx, available.UnitID, now)
		if err != nil {
			return err
		}

		result = entities.TransitionResult{
			Courier:  available,
			Position: view.Position(available.ID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyCtx, cancel := d.notifyContext(ctx)
	defer cancel()

	result.Warnings = append(result.Warnings, d.notifier.Returned(notifyCtx, result.Courier, result.Position)...)
	result.Warnings = append(result.Warnings, d.publish(notifyCtx, d.courierEvent(entities.EventCourierReturned, result.Courier, now))...)

	metrics.TransitionsTotal.WithLabelValues("return").Inc()
	d.log.Info("courier returned",
		logger.NewField("courier_id", courierID),
		logger.NewField("position", result.Position),
	)

	return &result, nil
}

// Summon отправляет срочное сообщение курьеру в доставке. Статус не меняется.
func (d *Dispatch) Summon(ctx context.Context, courierID int64, reason string) (*entities.TransitionResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if !isValidReason(reason) {
		return nil, ErrMissingReason
	}

	current, err := d.couriers.GetByID(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	if current.Status != entities.CourierDelivering {
		return nil, fmt.Errorf("%w: courier %d is %s, summon requires delivering",
			courier.ErrInvalidTransition, courierID, current.Status)
	}

	notifyCtx, cancel := d.notifyContext(ctx)
	defer cancel()

	result := &entities.TransitionResult{
		Courier:  current,
		Warnings: d.notifier.Summoned(notifyCtx, current, reason),
	}

	d.log.Info("courier summoned",
		logger.NewField("courier_id", courierID),
		logger.NewField("reason", reason),
	)

	return result, nil
}

// preAlert срабатывает по таймеру. Курьер мог за это время уйти из очереди:
// тогда предупреждение не отправляется.
func (d *Dispatch) preAlert(unitID string, courierID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.NotifyTimeout)
	defer cancel()

	target, err := d.couriers.GetByID(ctx, courierID)
	if err != nil {
		d.log.Warn("pre-alert target lookup failed",
			logger.NewField("courier_id", courierID),
			logger.NewField("error", err),
		)
		return
	}

	if target.Status != entities.CourierAvailable || !d.eligibility.IsInLiveQueue(target, d.clock()) {
		d.log.Info("pre-alert skipped, courier left the queue",
			logger.NewField("courier_id", courierID),
			logger.NewField("unit_id", unitID),
			logger.NewField("status", target.Status.String()),
		)
		return
	}

	for _, w := range d.notifier.PreAlert(ctx, target) {
		d.log.Warn("pre-alert notification failed",
			logger.NewField("courier_id", courierID),
			logger.NewField("channel", w.Channel),
			logger.NewField("error", w.Message),
		)
	}
}

// noShowWindowClosed только сообщает об истечении окна: перевод в no-show делает оператор.
func (d *Dispatch) noShowWindowClosed(called *entities.Courier, calledAt time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.NotifyTimeout)
	defer cancel()

	d.log.Info("no-show window closed",
		logger.NewField("courier_id", called.ID),
		logger.NewField("unit_id", called.UnitID),
		logger.NewField("called_at", calledAt),
	)

	ev := d.courierEvent(entities.EventCourierNoShowWindowClose, called, d.clock())
	if err := d.publisher.Publish(ctx, ev); err != nil {
		d.log.Warn("no-show window event publish failed",
			logger.NewField("courier_id", called.ID),
			logger.NewField("error", err),
		)
	}
}

func (d *Dispatch) queue(ctx context.Context, unitID string, now time.Time) (entities.QueueView, error) {
	couriers, err := d.couriers.ListActiveByStatus(ctx, unitID, entities.CourierAvailable)
	if err != nil {
		return entities.QueueView{}, fmt.Errorf("list available couriers: %w", err)
	}

	return entities.QueueView{
		UnitID:   unitID,
		Couriers: ordering.Sort(d.eligibility.Filter(couriers, now)),
	}, nil
}

func (d *Dispatch) publish(ctx context.Context, ev entities.DispatchEvent) []entities.Warning {
	err := d.publisher.Publish(ctx, ev)
	if err == nil {
		return nil
	}

	d.log.Warn("dispatch event publish failed",
		logger.NewField("kind", ev.Kind.String()),
		logger.NewField("key", ev.Key),
		logger.NewField("error", err),
	)
	return []entities.Warning{{Channel: entities.ChannelEvents, Message: err.Error()}}
}

func (d *Dispatch) courierEvent(kind entities.DispatchEventKind, c *entities.Courier, at time.Time) entities.DispatchEvent {
	ev := entities.DispatchEvent{
		Key:         entities.CourierEventKey(c.ID),
		Kind:        kind,
		UnitID:      c.UnitID,
		CourierID:   c.ID,
		CourierName: c.Name,
		OccurredAt:  at,
	}
	if c.BagType != nil {
		ev.BagType = *c.BagType
	}
	return ev
}

// notifyContext отвязывает оповещения от отмены запроса: переход уже зафиксирован.
func (d *Dispatch) notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), d.cfg.NotifyTimeout)
}

func (d *Dispatch) clock() time.Time {
	return d.now().UTC().Truncate(time.Microsecond)
}
