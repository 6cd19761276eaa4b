package timers

import (
	"sync"
	"time"
)

// Registry хранит отменяемые таймеры, привязанные к ключу сущности.
// Новый таймер с тем же ключом отменяет предыдущий. Отмененный таймер
// никогда не вызывает свой callback, даже если time.AfterFunc уже сработал.
type Registry struct {
	mu      sync.Mutex
	handles map[string]*handle
	closed  bool
}

type handle struct {
	timer     *time.Timer
	cancelled bool
}

func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]*handle),
	}
}

// Schedule планирует fn через d. Возвращает false, если реестр уже закрыт.
func (r *Registry) Schedule(key string, d time.Duration, fn func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	r.cancelLocked(key)

	h := &handle{}
	h.timer = time.AfterFunc(d, func() {
		r.mu.Lock()
		if h.cancelled || r.handles[key] != h {
			r.mu.Unlock()
			return
		}
		delete(r.handles, key)
		r.mu.Unlock()

		fn()
	})
	r.handles[key] = h
	return true
}

// Cancel отменяет таймер. Возвращает true, если таймер был активен.
func (r *Registry) Cancel(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cancelLocked(key)
}

func (r *Registry) Pending(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.handles[key]
	return ok
}

// Close отменяет все таймеры и запрещает новые.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.handles {
		r.cancelLocked(key)
	}
	r.closed = true
}

func (r *Registry) cancelLocked(key string) bool {
	h, ok := r.handles[key]
	if !ok {
		return false
	}
	h.cancelled = true
	h.timer.Stop()
	delete(r.handles, key)
	return true
}
