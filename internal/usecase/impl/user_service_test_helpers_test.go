package impl

import (
	"io"
	"log/slog"

	"bloodlink/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(strictOwnership bool) *config.Config {
	cfg := &config.Config{}
	cfg.Access.StrictOwnership = strictOwnership
	cfg.Payment.Currency = "usd"

	return cfg
}
