package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"rental/config"
	deliverycontext "rental/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record-not-found is not an error")

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("ignored"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Error(ctx, "failed %s", "badly")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "req-1")
	assert.Contains(t, scoped.String(), "failed badly")
}
