package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/stats"
)

// Stats handles dashboard statistics
type Stats struct {
	service *stats.Service
	logger  *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *stats.Service, logger *zap.Logger) *Stats {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stats{service: service, logger: logger}
}

// Get handles GET /api/stats
// @Summary      Upload statistics
// @Description  Totals and a seven-day upload histogram, oldest day first
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  meeting.StatsResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /stats [get]
func (h *Stats) Get(c echo.Context) error {
	s, err := h.service.Get(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToStatsResponse(s))
}
