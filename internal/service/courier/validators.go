package courier

import (
	"strings"

	"courierqueue/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace((phone))
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidUnit(unitID string) bool {
	return strings.TrimSpace(unitID) != ""
}

func isValidShift(shift entities.Shift) bool {
	if shift.UseDefault {
		return true
	}
	// окно нулевой длины не имеет смысла, окно через полночь допустимо
	return shift.Start.Valid() && shift.End.Valid() && shift.Start != shift.End
}

func isValidWorkDays(days entities.WorkDays) bool {
	return days == nil || len(days) == 7
}

func isValidReorder(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return false
		}
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}
