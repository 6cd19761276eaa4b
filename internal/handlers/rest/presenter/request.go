package presenter

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"courierqueue/internal/entities"
)

var (
	ErrInvalidPathID = errors.New("invalid id in path")
	ErrInvalidShift  = errors.New("shift requires use_default_shift or both shift_start and shift_end")
)

// PathID читает {id} из маршрута.
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// PathUnit читает {unit} из маршрута.
func PathUnit(r *http.Request) string {
	return mux.Vars(r)["unit"]
}

// Shift собирает окно смены из полей запроса. Если ни одно поле не передано, возвращает nil.
func Shift(useDefault *bool, start, end *string) (*entities.Shift, error) {
	if useDefault == nil && start == nil && end == nil {
		return nil, nil
	}
	if useDefault != nil && *useDefault {
		return &entities.Shift{UseDefault: true}, nil
	}
	if start == nil || end == nil {
		return nil, ErrInvalidShift
	}

	startAt, err := entities.ParseTimeOfDay(*start)
	if err != nil {
		return nil, fmt.Errorf("%w: shift_start: %w", ErrInvalidShift, err)
	}
	endAt, err := entities.ParseTimeOfDay(*end)
	if err != nil {
		return nil, fmt.Errorf("%w: shift_end: %w", ErrInvalidShift, err)
	}

	return &entities.Shift{Start: startAt, End: endAt}, nil
}

func WorkDays(days *[]bool) *entities.WorkDays {
	if days == nil {
		return nil
	}
	workDays := entities.WorkDays(*days)
	return &workDays
}
