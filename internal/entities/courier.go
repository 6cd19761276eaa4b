package entities

import (
	"time"
)

type Courier struct {
	ID               int64
	Name             string
	Phone            string
	UnitID           string
	FranchiseID      string
	Active           bool
	Status           CourierStatusType
	QueuePositionKey time.Time
	Shift            Shift
	WorkDays         WorkDays
	DepartureTime    *time.Time
	BagType          *string
	// CalledAt - время последнего вызова, меняется только переходом available -> called.
	CalledAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierStatusType string

const (
	CourierAvailable  CourierStatusType = "available"
	CourierCalled     CourierStatusType = "called"
	CourierDelivering CourierStatusType = "delivering"
)

const DefaultStatusType = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

// TimeOfDay - минуты от полуночи, [0, 1440).
type TimeOfDay int

const MinutesPerDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) String() string {
	m := int(t)
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}

// ParseTimeOfDay разбирает строку формата "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return TimeOfDayOf(parsed), nil
}

// Shift - окно смены курьера. Если End < Start, окно переходит через полночь.
type Shift struct {
	UseDefault bool
	Start      TimeOfDay
	End        TimeOfDay
}

// WorkDays индексируется time.Weekday (воскресенье = 0). nil означает "все дни".
type WorkDays []bool

func (w WorkDays) Works(day time.Weekday) bool {
	if len(w) != 7 {
		return true
	}
	return w[day]
}

func AllWorkDays() WorkDays {
	return WorkDays{true, true, true, true, true, true, true}
}

type CourierModify struct {
	ID               *int64
	Name             *string
	Phone            *string
	UnitID           *string
	FranchiseID      *string
	Active           *bool
	Status           *CourierStatusType
	QueuePositionKey *time.Time
	Shift            *Shift
	WorkDays         *WorkDays
}

// QueueView - упорядоченная живая очередь юнита.
type QueueView struct {
	UnitID   string
	Couriers []Courier
}

// Next - курьер, которого вызовут следующим.
func (q QueueView) Next() *Courier {
	if len(q.Couriers) == 0 {
		return nil
	}
	return &q.Couriers[0]
}

// NextNext используется для предварительного оповещения.
func (q QueueView) NextNext() *Courier {
	if len(q.Couriers) < 2 {
		return nil
	}
	return &q.Couriers[1]
}

// Position возвращает позицию курьера в очереди начиная с 1, либо 0.
func (q QueueView) Position(courierID int64) int {
	for i := range q.Couriers {
		if q.Couriers[i].ID == courierID {
			return i + 1
		}
	}
	return 0
}

// CourierTransition - условное изменение статуса: применяется, только если
// текущий статус курьера равен From.
type CourierTransition struct {
	ID               int64
	From             CourierStatusType
	To               CourierStatusType
	At               time.Time
	QueuePositionKey *time.Time
	DepartureTime    *time.Time
	ClearDeparture   bool
	BagType          *string
	CalledAt         *time.Time
	// OfCall ограничивает переход конкретным вызовом: called_at должен совпасть.
	OfCall *time.Time
}
