package presenter

import (
	"encoding/json"
	"net/http"

	"courierqueue/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// WriteJSON пишет статус и тело ответа. Ошибка кодирования только логируется:
// заголовок к этому моменту уже отправлен.
func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
