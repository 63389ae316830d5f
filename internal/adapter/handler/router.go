package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Pinger reports database reachability
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	exportHandler  *Export
	statsHandler   *Stats
	metrics        http.Handler
	db             Pinger
}

// NewRouter creates a new router with all handlers. metricsHandler and db may be nil.
func NewRouter(cfg *config.Config, meetingHandler *Meeting, exportHandler *Export, statsHandler *Stats, metricsHandler http.Handler, db Pinger) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		exportHandler:  exportHandler,
		statsHandler:   statsHandler,
		metrics:        metricsHandler,
		db:             db,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	rt.setupMeetingRoutes(api)
	api.GET("/download/:id/:format", rt.exportHandler.Download)
	api.GET("/stats", rt.statsHandler.Get)
}

// setupMeetingRoutes configures upload and history routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.POST("/upload", rt.meetingHandler.Upload)
	g.POST("/upload_with_progress", rt.meetingHandler.UploadWithProgress)
	g.GET("/history", rt.meetingHandler.History)
	g.GET("/meetings/:id", rt.meetingHandler.Get)
}

// healthCheck returns health status
// @Summary  Health check
// @Tags     System
// @Produce  json
// @Success  200  {object}  common.HealthResponse
// @Failure  503  {object}  common.HealthResponse
// @Router   /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Environment,
		Database:    "ok",
	}

	if rt.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := rt.db.PingContext(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = err.Error()
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}
	return c.JSON(http.StatusOK, resp)
}
