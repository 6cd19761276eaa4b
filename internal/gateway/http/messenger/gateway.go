package messenger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"courierqueue/internal/pkg/metrics"
)

const serviceName = "courier-messenger"

var ErrUnexpectedStatus = errors.New("messaging provider responded with unexpected status")

type message struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// MessengerGateway отправляет текстовые сообщения курьерам через провайдера.
// Пустой apiURL выключает канал.
type MessengerGateway struct {
	client  client
	apiURL  string
	token   string
	timeout time.Duration
}

func New(client client, apiURL, token string, timeout time.Duration) *MessengerGateway {
	return &MessengerGateway{
		client:  client,
		apiURL:  apiURL,
		token:   token,
		timeout: timeout,
	}
}

func NewClient(timeout time.Duration) *fasthttp.Client {
	return &fasthttp.Client{
		Name:                "courierqueue-messenger",
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxIdleConnDuration: time.Minute,
	}
}

func (g *MessengerGateway) Enabled() bool {
	return g.apiURL != ""
}

func (g *MessengerGateway) Send(ctx context.Context, phone, text string) error {
	body, err := json.Marshal(message{Phone: phone, Message: text})
	if err != nil {
		return fmt.Errorf("gateway messenger, marshal: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.apiURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.SetBody(body)

	start := time.Now()
	err = g.client.DoDeadline(req, resp, deadline(ctx, g.timeout))
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode())
		if resp.StatusCode() < fasthttp.StatusOK || resp.StatusCode() >= fasthttp.StatusMultipleChoices {
			err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
		}
	}
	metrics.GatewayRequestDuration.WithLabelValues(serviceName, "Send", status).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("gateway messenger, send to %s: %w", phone, err)
	}

	return nil
}

func deadline(ctx context.Context, timeout time.Duration) time.Time {
	d := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}
