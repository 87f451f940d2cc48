package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const requestTimeout = 20 * time.Second

// leveledLogger adapts slog to the processor client's logger interface.
// Client info output is request tracing and is demoted to debug.
type leveledLogger struct {
	logger *slog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Infof(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Warnf(format string, v ...any) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *leveledLogger) Errorf(format string, v ...any) {
	l.log(slog.LevelError, format, v...)
}

func (l *leveledLogger) log(level slog.Level, format string, v ...any) {
	if l.logger == nil {
		return
	}

	l.logger.Log(context.Background(), level, fmt.Sprintf(format, v...), slog.String("component", "payment"))
}
