package pubsub

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/domain/service"

	"github.com/pkg/errors"
	cdkpubsub "gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers mem:// topic URLs
)

const goCloudShutdownTimeout = 5 * time.Second

// goCloudPublisher implements EventPublisher over any Go CDK topic (mem://, gcppubsub://, ...)
type goCloudPublisher struct {
	topic  *cdkpubsub.Topic
	logger *slog.Logger
}

// OpenGoCloudPublisher opens the topic at url
func OpenGoCloudPublisher(ctx context.Context, url string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := cdkpubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", url)
	}

	return NewGoCloudPublisher(topic, logger), nil
}

// NewGoCloudPublisher wraps an already opened topic
func NewGoCloudPublisher(topic *cdkpubsub.Topic, logger *slog.Logger) service.EventPublisher {
	return &goCloudPublisher{topic: topic, logger: logger}
}

// PublishBookingEvent sends the event with its attributes as metadata
func (p *goCloudPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &cdkpubsub.Message{Body: data, Metadata: eventAttributes(event)}); err != nil {
		return errors.WithStack(err)
	}

	p.logger.DebugContext(ctx, "[GoCloudPubSub] Event published",
		slog.String("type", event.Type),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}

// Close flushes and shuts the topic down
func (p *goCloudPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), goCloudShutdownTimeout)
	defer cancel()

	return errors.WithStack(p.topic.Shutdown(ctx))
}
