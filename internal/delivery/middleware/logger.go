package middleware

import (
	"log/slog"
	"time"

	"rental/config"
	deliverycontext "rental/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// slowRequestThreshold makes a request loggable even outside debug mode.
const slowRequestThreshold = 2 * time.Second

// LoggerMiddleware writes the access log. In debug mode every request is
// logged; otherwise only failures and slow requests are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the status before it is logged.
			c.Error(err)
		}

		latency := time.Since(start)
		status := c.Response().Status
		if m.debug || status >= 500 || latency >= slowRequestThreshold {
			m.logRequest(c, status, latency, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if len(req.URL.RawQuery) > 0 {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400 || latency >= slowRequestThreshold:
		level = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
