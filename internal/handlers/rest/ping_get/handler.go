package ping_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"

	"courierqueue/internal/generated/dto"
	"courierqueue/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(dto.PingResponse{Message: pointer.To("pong")}); err != nil {
		h.log.Error("encode ping response", logger.NewField("error", err))
	}
}
