// Package server implements the HTTP server using Echo framework.
//
// Routes: analysis API (POST /analyze, /suggest, /enhance) and observability
// (GET /, /health, /version, /metrics). Handlers translate domain errors into
// structured HTTP responses via the errors middleware.
package server
