package display_get

import (
	"net/http"

	"courierqueue/internal/handlers/rest/presenter"
)

// Handler отдает то, что сейчас показывает публичный экран юнита.
type Handler struct {
	log       handlerLogger
	announcer Announcer
}

func New(log handlerLogger, announcer Announcer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		announcer: announcer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := presenter.Display(h.announcer.Current(), h.announcer.Pending())

	// экран опрашивает эндпоинт постоянно, промежуточные кеши не нужны
	w.Header().Set("Cache-Control", "no-store")
	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
