package display_poll

import (
	"context"
	"time"
)

type Service interface {
	Poll(ctx context.Context) (int, error)
}

// DisplayPoll - запасной канал экрана: периодически перечитывает вызванных
// курьеров и талоны на случай, если push-событие не дошло.
type DisplayPoll struct {
	service  Service
	interval time.Duration
}

func NewDisplayPoll(service Service, interval time.Duration) *DisplayPoll {
	return &DisplayPoll{
		service:  service,
		interval: interval,
	}
}

func (d *DisplayPoll) TTL() time.Duration {
	return d.interval
}

func (d *DisplayPoll) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	_, err := d.service.Poll(ctxWithTimeout)
	return err
}

func (d *DisplayPoll) Info() string {
	return "display poll"
}
