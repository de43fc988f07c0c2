package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental/config"
	"rental/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/pubsub/mempubsub"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.BookingEvent {
	return &service.BookingEvent{
		RequestID:  "req-1",
		Type:       service.BookingEventCreated,
		BookingID:  "b-1",
		PropertyID: "p-1",
		RenterID:   "u-1",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-05",
		OccurredAt: "2024-02-01T00:00:00Z",
	}
}

func TestEventAttributes(t *testing.T) {
	event := sampleEvent()
	attrs := eventAttributes(event)
	assert.Equal(t, "booking.created", attrs["type"])
	assert.Equal(t, "b-1", attrs["booking_id"])
	assert.Equal(t, "p-1", attrs["property_id"])
	assert.Equal(t, "req-1", attrs["request_id"])

	event.RequestID = ""
	_, ok := eventAttributes(event)["request_id"]
	assert.False(t, ok)
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	require.NoError(t, publisher.PublishBookingEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "booking.created", received.Message.Attributes["type"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.BookingEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "b-1", decoded.BookingID)
	assert.Equal(t, "2024-03-05", decoded.EndDate)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	err := publisher.PublishBookingEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestGoCloudPublisher(t *testing.T) {
	ctx := context.Background()
	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Minute)
	defer sub.Shutdown(ctx)

	publisher := NewGoCloudPublisher(topic, testLogger())
	require.NoError(t, publisher.PublishBookingEvent(ctx, sampleEvent()))

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(recvCtx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "p-1", msg.Metadata["property_id"])
	var decoded service.BookingEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, service.BookingEventCreated, decoded.Type)

	require.NoError(t, publisher.Close())
}

func TestOpenGoCloudPublisher_MemURL(t *testing.T) {
	publisher, err := OpenGoCloudPublisher(context.Background(), "mem://booking-events-test", testLogger())
	require.NoError(t, err)
	require.NoError(t, publisher.PublishBookingEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg

	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true

	return nil
}

func TestRabbitMQPublisher(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &rabbitMQPublisher{channel: ch, exchange: defaultExchange, logger: testLogger()}

	require.NoError(t, publisher.PublishBookingEvent(context.Background(), sampleEvent()))
	assert.Equal(t, defaultExchange, ch.exchange)
	assert.Equal(t, "booking.created", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "req-1", ch.msg.CorrelationId)
	assert.Equal(t, "b-1", ch.msg.Headers["booking_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestRabbitMQPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	publisher := &rabbitMQPublisher{channel: ch, exchange: defaultExchange, logger: testLogger()}

	err := publisher.PublishBookingEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "gocloud mem", cfg: &config.PubSubConfig{Provider: ProviderGoCloud, URL: "mem://provider-test"}},
		{name: "gocloud without url", cfg: &config.PubSubConfig{Provider: ProviderGoCloud}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: ProviderRabbitMQ}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
