package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menumaster/config"
	"menumaster/internal/delivery/worker/handler"
	"menumaster/internal/domain/service"
	mockSvc "menumaster/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkerEcho_HealthAndPush(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	notificationSvc := mockSvc.NewMockNotificationService(t)
	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "kitchen", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	e := newEcho(cfg, logger, handler.NewPushHandler(handler.PushHandlerParams{
		Config:          cfg,
		Logger:          logger,
		NotificationSvc: notificationSvc,
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	event, err := json.Marshal(&service.OrderEvent{OrderID: "order_abc", ShortCode: "abc", Total: "6.00"})
	require.NoError(t, err)
	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(event)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
