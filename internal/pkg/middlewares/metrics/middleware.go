package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"courierqueue/pkg/logger"
)

// Middleware пишет длительность и счетчик запросов. Метка route - шаблон
// mux, а не сырой путь, иначе id курьеров раздувают кардинальность.
func Middleware(log middlewareLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			status := strconv.Itoa(rec.status)
			route := routeTemplate(r)
			unit := mux.Vars(r)["unit"]

			requestDuration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			requestsTotal.WithLabelValues(r.Method, route, status, unit).Inc()

			log.Debug("http request",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("unit", unit),
				logger.NewField("status", rec.status),
				logger.NewField("duration", elapsed),
			)
		})
	}
}

func routeTemplate(r *http.Request) string {
	current := mux.CurrentRoute(r)
	if current == nil {
		return "unmatched"
	}
	template, err := current.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return template
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
