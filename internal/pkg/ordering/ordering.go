package ordering

import (
	"sort"
	"time"

	"courierqueue/internal/entities"
)

// FrontOfQueueKey - минимально возможный ключ. Используется при no-show,
// чтобы курьер гарантированно оказался первым.
var FrontOfQueueKey = time.Unix(0, 0).UTC()

const ReorderStep = time.Second

// Sort упорядочивает курьеров по ключу позиции по возрастанию.
// При равных ключах порядок определяется по ID, чтобы результат был детерминированным.
func Sort(couriers []entities.Courier) []entities.Courier {
	sorted := make([]entities.Courier, len(couriers))
	copy(sorted, couriers)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := sorted[i].QueuePositionKey, sorted[j].QueuePositionKey
		if ki.Equal(kj) {
			return sorted[i].ID < sorted[j].ID
		}
		return ki.Before(kj)
	})
	return sorted
}

// ReorderKeys выдает новые ключи для ручной перестановки: now + i секунд.
// Ключи строго возрастают и сохраняют запрошенный порядок.
func ReorderKeys(ids []int64, now time.Time) map[int64]time.Time {
	keys := make(map[int64]time.Time, len(ids))
	for i, id := range ids {
		keys[id] = now.Add(time.Duration(i) * ReorderStep)
	}
	return keys
}

// BackOfQueueKey - ключ для skip-turn, возврата с доставки и повторной активации.
func BackOfQueueKey(now time.Time) time.Time {
	return now
}
