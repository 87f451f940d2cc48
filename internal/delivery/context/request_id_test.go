package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_RoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerAndActor(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))

	assert.Empty(t, GetActor(ctx))
	assert.Equal(t, "a@x.com", GetActor(WithActor(ctx, "a@x.com")))
}
