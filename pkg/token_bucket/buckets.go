package token_bucket

import (
	"sync"
	"time"
)

// Buckets - набор token bucket'ов по ключу. Каждый ключ (юнит, клиент)
// получает собственную емкость, поэтому шумный терминал одного юнита
// не выбирает лимит остальных.
type Buckets struct {
	rate  float64
	burst float64
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

type Option func(*Buckets)

// WithClock подменяет источник времени, нужен в тестах.
func WithClock(now func() time.Time) Option {
	return func(b *Buckets) {
		b.now = now
	}
}

// New создает набор с пополнением rate токенов в секунду и емкостью burst.
func New(rate float64, burst int, opts ...Option) *Buckets {
	b := &Buckets{
		rate:    rate,
		burst:   float64(burst),
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Buckets) Allow(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	bk, ok := b.buckets[key]
	if !ok {
		bk = &bucket{tokens: b.burst, lastSeen: now}
		b.buckets[key] = bk
	}

	if elapsed := now.Sub(bk.lastSeen).Seconds(); elapsed > 0 {
		bk.tokens = min(b.burst, bk.tokens+elapsed*b.rate)
		bk.lastSeen = now
	}

	if bk.tokens < 1 {
		return false
	}
	bk.tokens--
	return true
}
