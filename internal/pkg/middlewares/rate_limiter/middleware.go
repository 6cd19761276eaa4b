package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"courierqueue/pkg/logger"
)

// globalKey - ведро для маршрутов без {unit}: справочные курьеры, тикеты по id.
const globalKey = "*"

// Middleware ограничивает частоту запросов отдельно для каждого юнита.
// Ключ берется из переменной маршрута {unit}, поэтому middleware
// должен подключаться через router.Use, после сопоставления маршрута.
func Middleware(log middlewareLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := globalKey
			if unit, ok := mux.Vars(r)["unit"]; ok && unit != "" {
				key = unit
			}

			if limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			rejectedTotal.WithLabelValues(key, route).Inc()
			log.Warn("rate limit exceeded",
				logger.NewField("unit", key),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte(`{"message":"rate limit exceeded, try again later"}`)); err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("route", route),
				)
			}
		})
	}
}
