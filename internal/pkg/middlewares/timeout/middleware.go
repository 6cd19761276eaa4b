package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deadlineExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "courierqueue_http_request_deadline_exceeded_total",
		Help: "Requests whose context deadline expired before the handler returned",
	},
	[]string{"route"},
)

// Middleware ограничивает время обработки запроса. Родительский контекст
// запроса - ongoingCtx из BaseContext, поэтому SIGTERM его не отменяет.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				route := r.URL.Path
				if current := mux.CurrentRoute(r); current != nil {
					if template, err := current.GetPathTemplate(); err == nil {
						route = template
					}
				}
				deadlineExceededTotal.WithLabelValues(route).Inc()
			}
		})
	}
}
