package pubsub

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localRequestTimeout = 30 * time.Second
	// The worker answers 503 when Firebase is temporarily unavailable; Pub/Sub would redeliver.
	localMaxAttempts  = 3
	localRetryBackoff = 200 * time.Millisecond
)

// localHTTPPublisher posts push messages straight to the notify worker during development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localRequestTimeout},
		backoff:    localRetryBackoff,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(slog.String("order_id", event.OrderID))

	encoded, err := encodeOrderEvent(event)
	if err != nil {
		return err
	}
	body, err := encoded.pushMessage(event.OrderID, time.Now())
	if err != nil {
		return err
	}

	var status int
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		status, err = p.post(ctx, body, event.RequestID)
		if err != nil {
			return err
		}
		if status < 300 && status >= 200 {
			logger.Info("[LocalPubSub] Event delivered", slog.Int("attempt", attempt))

			return nil
		}
		if status != http.StatusServiceUnavailable {
			break
		}

		logger.Warn("[LocalPubSub] Worker asked for redelivery", slog.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}

	return errors.Errorf("worker returned non-success status: %d", status)
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
