package healthcheck_head

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

const probeTimeout = 2 * time.Second

// Probe проверяет одну зависимость: базу, redis.
type Probe func(ctx context.Context) error

type Handler struct {
	isShuttingDown *atomic.Bool
	probes         map[string]Probe
	names          []string
}

func New(isShuttingDown *atomic.Bool, probes map[string]Probe) *Handler {
	names := make([]string, 0, len(probes))
	for name := range probes {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Handler{
		isShuttingDown: isShuttingDown,
		probes:         probes,
		names:          names,
	}
}

// ServeHTTP отвечает 204, пока сервис не останавливается и все зависимости
// доступны. Имена упавших проверок уходят в заголовок X-Unhealthy: у HEAD нет тела.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	var failed []string
	for _, name := range h.names {
		if err := h.probes[name](ctx); err != nil {
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		w.Header().Set("X-Unhealthy", strings.Join(failed, ","))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
