package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"menumaster/config"
	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/constants"
	"menumaster/internal/domain/service"
	"menumaster/internal/infra/notification"
	"menumaster/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultKitchenTopic = "kitchen"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler turns confirmed order events into kitchen push notifications
type PushHandler struct {
	verifyPushAuth  bool
	topic           string
	storeName       string
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	topic := defaultKitchenTopic
	if params.Config.Firebase != nil && params.Config.Firebase.Topic != "" {
		topic = params.Config.Firebase.Topic
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		topic:           topic,
		storeName:       params.Config.StoreName(),
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeOrderEvent(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("order_id", event.OrderID),
		slog.Int("item_count", len(event.Items)),
	)

	title, body, data := h.prepareNotificationContent(event)
	if err := h.notificationSvc.SendTopicNotification(ctx, h.topic, title, body, data); err != nil {
		retryable := notification.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to notify kitchen",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// 503 asks Pub/Sub to redeliver, 200 drops the message
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Kitchen notified", slog.String("order_id", event.OrderID))

	return c.NoContent(http.StatusOK)
}

func decodeOrderEvent(encoded string) (*service.OrderEvent, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64 data")
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal order event")
	}

	if event.OrderID == "" {
		return nil, errors.New("order event without order_id")
	}

	return &event, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) prepareNotificationContent(event *service.OrderEvent) (title, body string, data map[string]string) {
	title = fmt.Sprintf("Novo pedido #%s", event.ShortCode)

	lines := make([]string, 0, len(event.Items))
	for _, item := range event.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}
	body = strings.Join(lines, ", ")

	if total, err := decimal.NewFromString(event.Total); err == nil {
		body = fmt.Sprintf("%s - Total: %s", body, util.FormatBRL(total))
	}

	data = map[string]string{
		"order_id":   event.OrderID,
		"short_code": event.ShortCode,
		"total":      event.Total,
		"created_at": event.CreatedAt,
		"store":      h.storeName,
	}
	if event.UserID != "" {
		data["user_id"] = event.UserID
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
