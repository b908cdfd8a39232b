package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Analysis API
	s.echo.POST("/analyze", s.handleAnalyze)
	s.echo.POST("/suggest", s.handleSuggest)
	s.echo.POST("/enhance", s.handleEnhance)
}
