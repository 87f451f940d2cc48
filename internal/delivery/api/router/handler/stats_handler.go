package handler

import (
	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// Stats returns user, request and funding totals.
func (h *StatsHandler) Stats(c echo.Context) error {
	stats, err := h.statsUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}
