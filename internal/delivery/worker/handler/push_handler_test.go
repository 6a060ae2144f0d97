package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menumaster/config"
	"menumaster/internal/domain/service"
	"menumaster/internal/infra/notification"
	mockSvc "menumaster/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockNotificationService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Firebase = &config.FirebaseConfig{Topic: "cozinha"}
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	}), notificationSvc
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		OrderID:   "order_3f2a9c10-aaaa",
		ShortCode: "3f2a9c",
		Total:     "51.00",
		Items:     []service.OrderEventItem{{Name: "Hambúrguer Clássico", Quantity: 2, Price: "25.50"}},
		CreatedAt: "2024-03-15T12:30:00Z",
	}
}

func TestHandlePush_NotifiesKitchenTopic(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "cozinha", "Novo pedido #3f2a9c",
			"2x Hambúrguer Clássico - Total: R$ 51,00",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["order_id"] == "order_3f2a9c10-aaaa" && data["store"] == "MenuMaster"
			})).
		Return(nil)

	rec := servePush(h, pushBody(t, sampleEvent(), map[string]string{"request_id": "req-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryableFailure(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&notification.SendError{Err: errors.New("unavailable"), Retryable: true})

	rec := servePush(h, pushBody(t, sampleEvent(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcked(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&notification.SendError{Err: errors.New("invalid argument"), Retryable: false})

	rec := servePush(h, pushBody(t, sampleEvent(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "missing order id", body: pushBody(t, &service.OrderEvent{Total: "1.00"}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestExtractRequestID_Priority(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := &service.OrderEvent{RequestID: "from-event"}

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Equal(t, "from-attr", h.extractRequestID(req.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(req.Context(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(req.Context(), &msg, event))
}
