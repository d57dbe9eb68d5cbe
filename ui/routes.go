package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "synthml/internal/errors"
)

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleMarketing)
	s.router.GET("/healthz", s.handleHealth)

	dash := s.router.Group("/dashboard")
	{
		dash.GET("", s.handleDashboardRedirect)
		dash.GET("/overview", s.handleOverview)
		dash.GET("/data-quality", s.handleDataQuality)
		dash.GET("/data-quality/report.xlsx", s.handleDataQualityReport)
		dash.GET("/data-sources", s.handleDataSources)
		dash.GET("/models", s.handleModels)
		dash.GET("/models/new", s.handleModelNew)
		dash.GET("/monitoring", s.handleMonitoring)
		dash.GET("/exports", s.handleExports)
		dash.GET("/settings", s.handleSettings)
		dash.GET("/team", s.handleTeam)
	}

	s.router.GET("/charts/:name", s.handleChartSVG)

	api := s.router.Group("/api")
	{
		api.GET("/charts", s.handleChartList)
		api.GET("/charts/:name", s.handleChartJSON)
		api.GET("/preferences/theme", s.handleGetTheme)
	}
	s.router.POST("/preferences/theme", s.handleSetTheme)
	s.router.POST("/api/preferences/theme", s.handleSetTheme)

	s.router.NoRoute(func(c *gin.Context) {
		s.respondError(c, apperrors.NotFound("page"))
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
