package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
	apperrors "github.com/Nikhil-NP/vibe-check/internal/errors"
)

type textRequest struct {
	Text string `json:"text"`
}

type enhanceRequest struct {
	Text          string         `json:"text"`
	SentimentData map[string]any `json:"sentiment_data,omitempty"`
}

type suggestResponse struct {
	Original    string             `json:"original"`
	Suggestions *domain.RewriteSet `json:"suggestions"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req textRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	result, err := s.app.Analyze(c.Request().Context(), req.Text)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(http.StatusOK, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSuggest(c echo.Context) error {
	var req textRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	rewrites, err := s.app.Suggest(req.Text)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(http.StatusOK, suggestResponse{
		Original:    req.Text,
		Suggestions: rewrites,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleEnhance(c echo.Context) error {
	var req enhanceRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	enhancement, err := s.app.Enhance(c.Request().Context(), req.Text, req.SentimentData)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(http.StatusOK, enhancement); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// mapDomainError translates domain sentinel errors to structured HTTP errors.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyText):
		return apperrors.ValidationError("text cannot be empty")
	case errors.Is(err, domain.ErrTextTooLong):
		return apperrors.ValidationError(fmt.Sprintf("text is too long (max %d characters)", domain.MaxTextLength))
	case errors.Is(err, domain.ErrEnhanceFailed):
		return apperrors.ExternalError("AI enhancement failed", err)
	default:
		return apperrors.InternalError("analysis failed", err)
	}
}
