package ranking_get

import (
	"errors"
	"net/http"
	"time"

	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/history"
	"courierqueue/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает рейтинг юнита. ?from= в RFC3339, без него берутся последние сутки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unitID := presenter.PathUnit(r)

	var from time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		from = parsed.UTC()
	}

	ranking, err := h.service.Ranking(r.Context(), unitID, from)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrMissingRequiredFields),
			errors.Is(err, history.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("ranking",
				logger.NewField("unit_id", unitID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Ranking(ranking)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
