package eligibility

import (
	"time"

	"courierqueue/internal/entities"
)

const DefaultCheckInOverride = 24 * time.Hour

// Predicate решает, входит ли курьер в живую очередь прямо сейчас.
type Predicate struct {
	defaultShift entities.Shift
	location     *time.Location
	override     time.Duration
}

func New(defaultStart, defaultEnd entities.TimeOfDay, location *time.Location, override time.Duration) *Predicate {
	if location == nil {
		location = time.UTC
	}
	if override <= 0 {
		override = DefaultCheckInOverride
	}

	return &Predicate{
		defaultShift: entities.Shift{Start: defaultStart, End: defaultEnd},
		location:     location,
		override:     override,
	}
}

func (p *Predicate) IsInLiveQueue(courier *entities.Courier, now time.Time) bool {
	if courier == nil || !courier.Active {
		return false
	}

	local := now.In(p.location)

	scheduled := courier.WorkDays.Works(local.Weekday()) &&
		InWindow(p.effectiveShift(courier), entities.TimeOfDayOf(local))

	return scheduled || p.recentCheckIn(courier, now)
}

// Filter оставляет только курьеров из живой очереди, сохраняя исходный порядок.
func (p *Predicate) Filter(couriers []entities.Courier, now time.Time) []entities.Courier {
	result := make([]entities.Courier, 0, len(couriers))
	for i := range couriers {
		if p.IsInLiveQueue(&couriers[i], now) {
			result = append(result, couriers[i])
		}
	}
	return result
}

func (p *Predicate) effectiveShift(courier *entities.Courier) entities.Shift {
	if courier.Shift.UseDefault {
		return p.defaultShift
	}
	return courier.Shift
}

// recentCheckIn - ручной допуск: свежий ключ позиции перекрывает смену и рабочие дни.
// Ключи "в будущем" (после reorder) тоже считаются свежими.
func (p *Predicate) recentCheckIn(courier *entities.Courier, now time.Time) bool {
	if courier.QueuePositionKey.IsZero() {
		return false
	}
	return now.Sub(courier.QueuePositionKey) < p.override
}

// InWindow проверяет попадание минуты суток в окно смены, включая границы.
func InWindow(shift entities.Shift, at entities.TimeOfDay) bool {
	if shift.End < shift.Start {
		return at >= shift.Start || at <= shift.End
	}
	return shift.Start <= at && at <= shift.End
}
