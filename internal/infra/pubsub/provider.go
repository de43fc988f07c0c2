package pubsub

import (
	"context"
	"log/slog"

	"rental/config"
	"rental/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	// Connections made here outlive the constructor; the fx start context does not.
	ctx := context.Background()

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, cfg.CredentialsPath, logger)
		if err != nil {
			return nil, err
		}

	case ProviderGoCloud:
		if cfg.URL == "" {
			return nil, errors.New("topic URL is required for gocloud provider")
		}
		logger.Info("Using Go CDK Pub/Sub publisher", slog.String("url", cfg.URL))

		publisher, err = OpenGoCloudPublisher(ctx, cfg.URL, logger)
		if err != nil {
			return nil, err
		}

	case ProviderRabbitMQ:
		if cfg.RabbitURL == "" {
			return nil, errors.New("rabbitUrl is required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher", slog.String("exchange", cfg.Exchange))

		publisher, err = DialRabbitMQPublisher(cfg.RabbitURL, cfg.Exchange, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
