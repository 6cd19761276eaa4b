package courier

import (
	"context"
	"fmt"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/ordering"
)

type Courier struct {
	repository  Repository
	txManager   TxManager
	eligibility Eligibility
	timers      TimerCanceller
	now         func() time.Time
}

func New(repository Repository, txManager TxManager, eligibility Eligibility, timers TimerCanceller) *Courier {
	return &Courier{
		repository:  repository,
		txManager:   txManager,
		eligibility: eligibility,
		timers:      timers,
		now:         time.Now,
	}
}

// WithClock подменяет источник текущего времени.
func (s *Courier) WithClock(now func() time.Time) *Courier {
	s.now = now
	return s
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.UnitID == nil {
		return 0, ErrMissingRequiredFields
	}

	if courierModify.Status != nil {
		return 0, ErrStatusReadOnly
	}
	if err := validateModify(courierModify); err != nil {
		return 0, err
	}

	now := s.clock()
	courierModify.QueuePositionKey = &now

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

// UpdateCourier меняет карточку курьера. Статус меняется только переходами.
// active=false снимает отложенные оповещения. Переход false -> true ставит курьера
// в конец очереди; active=true у уже активного курьера ключ не трогает.
func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}

	if courierModify.Status != nil {
		return nil, ErrStatusReadOnly
	}

	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.UnitID == nil &&
		courierModify.FranchiseID == nil &&
		courierModify.Active == nil &&
		courierModify.Shift == nil &&
		courierModify.WorkDays == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	var courier *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if courierModify.Active != nil && *courierModify.Active {
			current, err := s.repository.GetByID(ctx, *courierModify.ID)
			if err != nil {
				return err
			}
			if !current.Active {
				courierModify.QueuePositionKey = pointerTo(ordering.BackOfQueueKey(s.clock()))
			}
		}

		var err error
		courier, err = s.repository.Update(ctx, courierModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}

	if !courier.Active {
		s.cancelPending(courier.ID)
	}

	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, unitID string) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// Queue - живая очередь юнита: активные свободные курьеры, прошедшие
// проверку смены, по возрастанию ключа позиции.
func (s *Courier) Queue(ctx context.Context, unitID string) (*entities.QueueView, error) {
	if !isValidUnit(unitID) {
		return nil, ErrInvalidUnit
	}

	return s.queue(ctx, unitID, s.clock())
}

// Reorder выдает курьерам из ids новые ключи в указанном порядке.
// Если хотя бы один курьер не стоит в очереди юнита, ничего не меняется.
func (s *Courier) Reorder(ctx context.Context, unitID string, ids []int64) (*entities.QueueView, error) {
	if !isValidUnit(unitID) {
		return nil, ErrInvalidUnit
	}
	if !isValidReorder(ids) {
		return nil, ErrInvalidReorder
	}

	now := s.clock()

	var view *entities.QueueView
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err := s.repository.SetQueueKeys(ctx, unitID, ordering.ReorderKeys(ids, now))
		if err != nil {
			return fmt.Errorf("set queue keys: %w", err)
		}

		if updated != int64(len(ids)) {
			return fmt.Errorf("%w: %d of %d couriers are not in the queue of unit %s",
				ErrInvalidReorder, int64(len(ids))-updated, len(ids), unitID)
		}

		view, err = s.queue(ctx, unitID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// CheckIn - явная отметка о приходе: ключ позиции = now, что
// открывает окно ручного допуска вне смены.
func (s *Courier) CheckIn(ctx context.Context, id int64) (*entities.TransitionResult, error) {
	return s.restamp(ctx, id)
}

// SkipTurn отправляет курьера в конец очереди и снимает его предупреждение "вы следующий".
func (s *Courier) SkipTurn(ctx context.Context, id int64) (*entities.TransitionResult, error) {
	result, err := s.restamp(ctx, id)
	if err != nil {
		return nil, err
	}

	s.timers.Cancel(entities.PreAlertTimerKey(id))
	return result, nil
}

func (s *Courier) restamp(ctx context.Context, id int64) (*entities.TransitionResult, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	now := s.clock()

	var result entities.TransitionResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if !current.Active {
			return ErrCourierSuspended
		}

		courier, err := s.repository.Transition(ctx, entities.CourierTransition{
			ID:               id,
			From:             entities.CourierAvailable,
			To:               entities.CourierAvailable,
			At:               now,
			QueuePositionKey: pointerTo(ordering.BackOfQueueKey(now)),
		})
		if err != nil {
			return fmt.Errorf("restamp courier: %w", err)
		}

		view, err := s.queue(ctx, courier.UnitID, now)
		if err != nil {
			return err
		}

		result = entities.TransitionResult{
			Courier:  courier,
			Position: view.Position(courier.ID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Courier) queue(ctx context.Context, unitID string, now time.Time) (*entities.QueueView, error) {
	couriers, err := s.repository.ListActiveByStatus(ctx, unitID, entities.CourierAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}

	return &entities.QueueView{
		UnitID:   unitID,
		Couriers: ordering.Sort(s.eligibility.Filter(couriers, now)),
	}, nil
}

func (s *Courier) cancelPending(id int64) {
	s.timers.Cancel(entities.PreAlertTimerKey(id))
	s.timers.Cancel(entities.NoShowTimerKey(id))
}

// clock обрезает время до микросекунд: с такой точностью его хранит Postgres.
func (s *Courier) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func validateModify(courierModify entities.CourierModify) error {
	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return ErrInvalidPhone
	}
	if courierModify.UnitID != nil && !isValidUnit(*courierModify.UnitID) {
		return ErrInvalidUnit
	}
	if courierModify.Shift != nil && !isValidShift(*courierModify.Shift) {
		return ErrInvalidShift
	}
	if courierModify.WorkDays != nil && !isValidWorkDays(*courierModify.WorkDays) {
		return ErrInvalidWorkDays
	}
	return nil
}

func pointerTo[T any](v T) *T {
	return &v
}
