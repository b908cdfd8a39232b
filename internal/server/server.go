package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Nikhil-NP/vibe-check/internal/config"
	"github.com/Nikhil-NP/vibe-check/internal/domain"
	apperrors "github.com/Nikhil-NP/vibe-check/internal/errors"
	"github.com/Nikhil-NP/vibe-check/internal/metrics"
	"github.com/Nikhil-NP/vibe-check/internal/platform/correlation"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "vibe-check-api"

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       domain.AnalysisService
	startTime time.Time
}

func NewServer(cfg *config.Config, app domain.AnalysisService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(correlation.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(apperrors.Middleware())
	e.Use(requestMetrics())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestMetrics records per-endpoint request durations.
func requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.RequestDuration.WithLabelValues(c.Path()).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
