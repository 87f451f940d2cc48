package middleware

import (
	"log/slog"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietRoutes are scraped by infrastructure and only logged on failure.
var quietRoutes = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware writes one access log record per request
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
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil && !res.Committed {
		// The central error handler has not written yet; derive the status it will use.
		status = statusFromError(err)
	}

	if _, quiet := quietRoutes[c.Path()]; quiet && status < 400 {
		return
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if actor := deliverycontext.GetActor(req.Context()); actor != "" {
		fields = append(fields, slog.String("actor", actor))
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if len(req.URL.RawQuery) > 0 {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
