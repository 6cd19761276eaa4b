package display

import (
	"context"
	"errors"
	"sync"
	"time"

	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/metrics"
	"courierqueue/internal/service/courier"
	"courierqueue/pkg/logger"
)

const (
	DefaultMinSpacing     = 5 * time.Second
	DefaultTeaserDuration = 4 * time.Second
	DefaultCallDuration   = 10 * time.Second

	sideEffectTimeout = 5 * time.Second
)

type Config struct {
	UnitID         string
	MinSpacing     time.Duration
	TeaserDuration time.Duration
	CallDuration   time.Duration
}

// Announcer показывает на экране ровно одно объявление за раз.
//
// Каждое событие вызова проходит две фазы (анонс и вызов) фиксированной длины.
// Повтор одного и того же перехода, пришедший и через push, и через опрос,
// отсекается по ключу и времени перехода. Метка снимается только тогда, когда
// опрос больше не видит сущность в статусе called.
type Announcer struct {
	log          displayLogger
	settings     SettingsReader
	phrases      PhraseFactory
	speaker      Speaker
	acknowledger Acknowledger
	cfg          Config
	now          func() time.Time

	mu        sync.Mutex
	markers   map[string]time.Time
	pending   []entities.DispatchEvent
	active    string
	current   entities.Announcement
	lastStart time.Time

	wake     chan struct{}
	speeches sync.WaitGroup
}

// NewAnnouncer: speaker может быть nil, тогда объявления идут без голоса.
func NewAnnouncer(
	log displayLogger,
	settings SettingsReader,
	phrases PhraseFactory,
	speaker Speaker,
	acknowledger Acknowledger,
	cfg Config,
) *Announcer {
	if cfg.MinSpacing <= 0 {
		cfg.MinSpacing = DefaultMinSpacing
	}
	if cfg.TeaserDuration <= 0 {
		cfg.TeaserDuration = DefaultTeaserDuration
	}
	if cfg.CallDuration <= 0 {
		cfg.CallDuration = DefaultCallDuration
	}

	return &Announcer{
		log:          log,
		settings:     settings,
		phrases:      phrases,
		speaker:      speaker,
		acknowledger: acknowledger,
		cfg:          cfg,
		now:          time.Now,
		markers:      make(map[string]time.Time),
		current:      entities.Announcement{Phase: entities.PhaseIdle},
		wake:         make(chan struct{}, 1),
	}
}

func (a *Announcer) WithClock(now func() time.Time) *Announcer {
	a.now = now
	return a
}

// Enqueue ставит событие вызова в очередь показа. false - дубль уже принятого перехода.
func (a *Announcer) Enqueue(ev entities.DispatchEvent) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if seen, ok := a.markers[ev.Key]; ok && !ev.OccurredAt.After(seen) {
		return false
	}

	a.markers[ev.Key] = ev.OccurredAt
	// более новый вызов вытесняет еще не показанный старый
	a.removePending(ev.Key)
	a.pending = append(a.pending, ev)

	select {
	case a.wake <- struct{}{}:
	default:
	}
	return true
}

// Withdraw убирает из очереди еще не показанное объявление. Метка остается,
// чтобы запоздалый опрос не поставил тот же переход повторно.
func (a *Announcer) Withdraw(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.removePending(key)
}

func (a *Announcer) removePending(key string) bool {
	kept := a.pending[:0]
	for i := range a.pending {
		if a.pending[i].Key != key {
			kept = append(kept, a.pending[i])
		}
	}
	removed := len(kept) != len(a.pending)
	a.pending = kept
	return removed
}

// Prune снимает метки сущностей, которых нет в текущем снимке опроса
// и которые не ждут и не идут на экране. Возвращает число снятых меток.
func (a *Announcer) Prune(present map[string]struct{}) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	queued := make(map[string]struct{}, len(a.pending))
	for i := range a.pending {
		queued[a.pending[i].Key] = struct{}{}
	}

	pruned := 0
	for key := range a.markers {
		if _, ok := present[key]; ok {
			continue
		}
		if _, ok := queued[key]; ok {
			continue
		}
		if key == a.active {
			continue
		}
		delete(a.markers, key)
		pruned++
	}
	return pruned
}

// Current - текущее состояние экрана.
func (a *Announcer) Current() entities.Announcement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *Announcer) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Run показывает объявления по одному, пока не отменен ctx.
func (a *Announcer) Run(ctx context.Context) error {
	defer a.speeches.Wait()

	for {
		ev, ok := a.next()
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-a.wake:
				continue
			}
		}

		if err := a.announce(ctx, ev); err != nil {
			a.reset()
			return nil
		}
	}
}

func (a *Announcer) next() (entities.DispatchEvent, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.pending) == 0 {
		return entities.DispatchEvent{}, false
	}

	ev := a.pending[0]
	a.pending = a.pending[1:]
	a.active = ev.Key
	return ev, true
}

func (a *Announcer) announce(ctx context.Context, ev entities.DispatchEvent) error {
	a.mu.Lock()
	wait := time.Duration(0)
	if !a.lastStart.IsZero() {
		wait = a.lastStart.Add(a.cfg.MinSpacing).Sub(a.now())
	}
	a.mu.Unlock()

	if wait > 0 {
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}

	phrases := a.phrases.Build(ev, a.loadSettings(ctx))
	startedAt := a.now()

	a.setPhase(ev, entities.PhaseTeaser, phrases.Teaser, startedAt)
	metrics.DisplayAnnouncementsTotal.WithLabelValues(ev.Kind.String()).Inc()
	a.log.Info("announcement started",
		logger.NewField("key", ev.Key),
		logger.NewField("kind", ev.Kind.String()),
	)

	if err := sleep(ctx, a.cfg.TeaserDuration); err != nil {
		return err
	}

	a.setPhase(ev, entities.PhaseCall, phrases.Call, startedAt)
	a.speak(ctx, phrases.Speech)

	if err := sleep(ctx, a.cfg.CallDuration); err != nil {
		return err
	}

	a.reset()

	if ev.Kind == entities.EventCourierCalled {
		a.acknowledge(ctx, ev)
	}
	return nil
}

func (a *Announcer) setPhase(ev entities.DispatchEvent, phase entities.AnnouncementPhase, text string, startedAt time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.lastStart = startedAt
	a.current = entities.Announcement{
		Phase:        phase,
		Kind:         ev.Kind,
		Key:          ev.Key,
		CourierName:  ev.CourierName,
		BagType:      ev.BagType,
		TicketNumber: ev.TicketNumber,
		Text:         text,
		StartedAt:    startedAt,
	}
}

func (a *Announcer) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = ""
	a.current = entities.Announcement{Phase: entities.PhaseIdle}
}

// speak не задерживает экран: голос ограничен длительностью фазы вызова.
func (a *Announcer) speak(ctx context.Context, text string) {
	if a.speaker == nil || text == "" {
		return
	}

	a.speeches.Add(1)
	go func() {
		defer a.speeches.Done()

		speakCtx, cancel := context.WithTimeout(ctx, a.cfg.CallDuration)
		defer cancel()

		if err := a.speaker.Speak(speakCtx, text); err != nil {
			a.log.Warn("speech failed", logger.NewField("error", err))
		}
	}()
}

func (a *Announcer) acknowledge(ctx context.Context, ev entities.DispatchEvent) {
	ackCtx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()

	_, err := a.acknowledger.AcknowledgeCall(ackCtx, ev.CourierID, ev.OccurredAt)
	switch {
	case err == nil:
		a.log.Info("courier acknowledged by display", logger.NewField("courier_id", ev.CourierID))
	case errors.Is(err, courier.ErrInvalidTransition), errors.Is(err, courier.ErrCourierNotFound):
		a.log.Info("courier already advanced, display fallback skipped",
			logger.NewField("courier_id", ev.CourierID),
		)
	default:
		a.log.Warn("display fallback acknowledge failed",
			logger.NewField("courier_id", ev.CourierID),
			logger.NewField("error", err),
		)
	}
}

func (a *Announcer) loadSettings(ctx context.Context) *entities.UnitSettings {
	settingsCtx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()

	settings, err := a.settings.Get(settingsCtx, a.cfg.UnitID)
	if err != nil {
		a.log.Warn("unit settings unavailable, default phrases used",
			logger.NewField("unit_id", a.cfg.UnitID),
			logger.NewField("error", err),
		)
		return nil
	}
	return settings
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
