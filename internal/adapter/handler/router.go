package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/yt-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/yt-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	summaryController *SummaryController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summaryController *SummaryController) *Router {
	return &Router{
		cfg:               cfg,
		summaryController: summaryController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	// Every method is routed so the controller can answer 405 in the JSON error shape
	api.Any("/summarize", rt.summaryController.Summarize)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil && rt.cfg.Server.Environment != "" {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
