package display

import (
	"context"

	"courierqueue/pkg/logger"
)

// LogSpeaker пишет фразу в лог вместо синтеза речи. Терминал экрана
// забирает текст из GET /display и озвучивает сам.
type LogSpeaker struct {
	log displayLogger
}

func NewLogSpeaker(log displayLogger) *LogSpeaker {
	return &LogSpeaker{log: log}
}

func (s *LogSpeaker) Speak(_ context.Context, text string) error {
	s.log.Info("speech", logger.NewField("text", text))
	return nil
}
