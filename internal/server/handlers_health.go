package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nikhil-NP/vibe-check/internal/version"
)

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"message": "Vibe Check API is running! 🌟",
		"endpoints": map[string]string{
			"/analyze": "POST - Analyze text sentiment",
			"/suggest": "POST - Rule-based rewrite suggestions",
			"/enhance": "POST - AI writing enhancement",
			"/health":  "GET - Health check",
		},
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status":  "healthy",
		"service": ServiceName,
		"uptime":  uptime,
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
