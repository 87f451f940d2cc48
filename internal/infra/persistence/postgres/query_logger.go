package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output to the request-scoped slog logger when one is on the context.
type queryLogger struct {
	fallback      *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{
		fallback:      base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	logger := l.loggerFor(ctx)
	if l.level < min || logger == nil {
		return
	}

	logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed and slow statements. Missing rows and unique violations are
// answered by the repositories and only logged in debug.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	statement, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", statement),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) classify(err error, elapsed time.Duration) (slog.Level, string, bool) {
	switch {
	case err != nil && (errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)):
		return slog.LevelDebug, "postgres statement rejected", l.level >= gormlogger.Info
	case err != nil:
		return slog.LevelError, "postgres statement failed", l.level >= gormlogger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return slog.LevelWarn, "postgres slow statement", l.level >= gormlogger.Warn
	default:
		return slog.LevelDebug, "postgres statement", l.level >= gormlogger.Info
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}
