package pubsub

import (
	"encoding/json"

	"rental/internal/domain/service"

	"github.com/pkg/errors"
)

// Provider names accepted in pubsub.provider
const (
	ProviderLocal    = "local"
	ProviderGoogle   = "google"
	ProviderGoCloud  = "gocloud"
	ProviderRabbitMQ = "rabbitmq"
)

// eventAttributes are the message attributes every transport carries for filtering and tracing
func eventAttributes(event *service.BookingEvent) map[string]string {
	attributes := map[string]string{
		"type":        event.Type,
		"booking_id":  event.BookingID,
		"property_id": event.PropertyID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func encodeEvent(event *service.BookingEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
