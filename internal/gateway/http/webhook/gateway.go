package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/metrics"
)

const serviceName = "operator-webhook"

var ErrUnexpectedStatus = errors.New("webhook responded with unexpected status")

// WebhookGateway отправляет операторский вебхук об отправке курьера.
// Повторов нет: неуспешная отправка возвращается вызывающему как есть.
type WebhookGateway struct {
	client  client
	timeout time.Duration
}

func New(client client, timeout time.Duration) *WebhookGateway {
	return &WebhookGateway{
		client:  client,
		timeout: timeout,
	}
}

func NewClient(timeout time.Duration) *fasthttp.Client {
	return &fasthttp.Client{
		Name:                "courierqueue-webhook",
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxIdleConnDuration: time.Minute,
	}
}

func (g *WebhookGateway) Send(ctx context.Context, url string, notice entities.DispatchWebhook) error {
	body, err := json.Marshal(toPayload(notice))
	if err != nil {
		return fmt.Errorf("gateway webhook, marshal: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	err = g.executeWithMetrics(ctx, "Send", req, resp)
	if err != nil {
		return fmt.Errorf("gateway webhook, send: %w", err)
	}

	return nil
}

func (g *WebhookGateway) executeWithMetrics(ctx context.Context, method string, req *fasthttp.Request, resp *fasthttp.Response) error {
	start := time.Now()

	err := g.client.DoDeadline(req, resp, deadline(ctx, g.timeout))
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode())
		if resp.StatusCode() < fasthttp.StatusOK || resp.StatusCode() >= fasthttp.StatusMultipleChoices {
			err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
		}
	}

	metrics.GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	return err
}

// deadline - наиболее ранний из дедлайна контекста и now+timeout.
func deadline(ctx context.Context, timeout time.Duration) time.Time {
	d := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}
