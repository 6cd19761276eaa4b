package dispatch_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"courierqueue/internal/service/display"
	"courierqueue/pkg/logger"
)

type Handler struct {
	service                  Service
	log                      logger.Logger
	messageProcessingTimeout time.Duration
}

func New(log logger.Logger, service Service, timeout time.Duration) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(logger.NewField("handler", "dispatch.events")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("dispatch.events: claim closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess.Context(), message) {
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("dispatch.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без
// коммита offset: сообщение будет перечитано.
func (h *Handler) messageProcessing(sessCtx context.Context, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sessCtx, h.messageProcessingTimeout)
	defer cancel()

	var event dispatchEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("dispatch.events: bad message")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("key", event.Key),
		logger.NewField("kind", event.Kind),
		logger.NewField("offset", message.Offset),
	)

	err := h.service.ProcessEvent(ctx, toDomain(event))
	switch {
	case err == nil:
		msgLog.Debug("dispatch.events: processed")

	case errors.Is(err, display.ErrForeignUnit):
		// топик общий для всех юнитов

	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		msgLog.With(logger.NewField("error", err)).
			Warn("dispatch.events: context cancelled, message will be reprocessed")
		return true

	default:
		msgLog.With(logger.NewField("error", err)).
			Warn("dispatch.events: failed to process event")
	}

	return false
}
