package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"menumaster/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/order-sub"

// PubSubPushMessage is the body a Pub/Sub push subscription POSTs to the notify worker.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type encodedEvent struct {
	data       []byte
	attributes map[string]string
}

func encodeOrderEvent(event *service.OrderEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order event")
	}

	return &encodedEvent{data: data, attributes: orderAttributes(event)}, nil
}

// pushMessage wraps the event the way a push subscription would deliver it.
func (e *encodedEvent) pushMessage(messageID string, publishedAt time.Time) ([]byte, error) {
	msg := PubSubPushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(e.data)
	msg.Message.Attributes = e.attributes
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal push message")
	}

	return body, nil
}

// orderAttributes are the message attributes used for filtering and tracing
func orderAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"order_id":   event.OrderID,
		"short_code": event.ShortCode,
	}
	if event.UserID != "" {
		attributes["user_id"] = event.UserID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
