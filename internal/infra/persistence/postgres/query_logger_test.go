package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedQueryLogger(debug bool) (*bytes.Buffer, gormlogger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newQueryLogger(base, cfg)
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "users"`, 1
}

func TestQueryLogger_FailedStatement(t *testing.T) {
	buf, logger := newBufferedQueryLogger(false)

	logger.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "postgres statement failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestQueryLogger_ExpectedRejectionsQuietOutsideDebug(t *testing.T) {
	buf, logger := newBufferedQueryLogger(false)

	logger.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	logger.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrDuplicatedKey)
	logger.Trace(context.Background(), time.Now(), sqlAndRows, nil)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_SlowStatement(t *testing.T) {
	buf, logger := newBufferedQueryLogger(false)

	logger.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

	assert.Contains(t, buf.String(), "postgres slow statement")
}

func TestQueryLogger_DebugLogsEveryStatement(t *testing.T) {
	buf, logger := newBufferedQueryLogger(true)

	logger.Trace(context.Background(), time.Now(), sqlAndRows, nil)

	assert.Contains(t, buf.String(), `SELECT * FROM \"users\"`)
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	_, logger := newBufferedQueryLogger(false)
	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "r-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	logger.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))

	assert.Contains(t, reqBuf.String(), "request_id=r-1")
}

func TestQueryLogger_SilentMode(t *testing.T) {
	buf, logger := newBufferedQueryLogger(true)

	logger.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))

	assert.Empty(t, buf.String())
}
