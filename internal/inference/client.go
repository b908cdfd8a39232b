// Package inference calls a hosted sentiment model (HuggingFace Inference
// API) for the optional third polarity signal. Failures are never fatal:
// callers receive ok=false and proceed with the reduced weighting scheme.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/Nikhil-NP/vibe-check/internal/metrics"
	"github.com/Nikhil-NP/vibe-check/internal/platform/retry"
)

const (
	baseURL        = "https://api-inference.huggingface.co/models/"
	requestTimeout = 10 * time.Second
	maxAttempts    = 2
	initialBackoff = 500 * time.Millisecond
)

// Client wraps the hosted inference endpoint behind a circuit breaker so a
// degraded upstream cannot slow every request down to its timeout.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	breaker    circuitbreaker.CircuitBreaker[float64]
}

// New creates an inference client for the given model. The token must be
// non-empty; callers that have no token should not construct a client.
func New(token, model string) *Client {
	breaker := circuitbreaker.NewBuilder[float64]().
		WithFailureRateThreshold(0.6, 5, 10*time.Second).
		WithDelay(30 * time.Second).
		WithSuccessThreshold(1).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			slog.Warn("Circuit breaker state changed",
				"component", "inference",
				"from", e.OldState.String(),
				"to", e.NewState.String(),
			)
			metrics.CircuitBreakerStateChanges.WithLabelValues("inference", e.NewState.String()).Inc()
			metrics.CircuitBreakerState.WithLabelValues("inference").Set(stateToFloat(e.NewState))
		}).
		Build()

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		endpoint:   baseURL + model,
		token:      token,
		breaker:    breaker,
	}
}

// Polarity scores the text with the hosted model, mapping its label/score
// list to a single polarity in [-1, 1]. ok is false on any failure.
func (c *Client) Polarity(ctx context.Context, text string) (float64, bool) {
	start := time.Now()

	polarity, err := failsafe.Get(func() (float64, error) {
		return retry.Do(ctx, retry.Policy{
			MaxAttempts:    maxAttempts,
			InitialBackoff: initialBackoff,
			OnRetry: func(attempt int, err error, backoff time.Duration) {
				slog.WarnContext(ctx, "Inference request failed, will retry",
					"attempt", attempt, "error", err, "backoff", backoff)
			},
		}, func() (float64, error) {
			return c.fetch(ctx, text)
		})
	}, c.breaker)

	metrics.ExternalCallDuration.WithLabelValues("inference").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalCallsTotal.WithLabelValues("inference", "error").Inc()
		slog.WarnContext(ctx, "Inference model unavailable, proceeding without it", "error", err)
		return 0, false
	}

	metrics.ExternalCallsTotal.WithLabelValues("inference", "success").Inc()
	return polarity, true
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *Client) fetch(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("inference returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	scores, err := parseScores(respBody)
	if err != nil {
		return 0, err
	}
	return labelPolarity(scores), nil
}

// parseScores accepts both response shapes the API produces: a flat
// label/score list and a singleton-batched nested list.
func parseScores(body []byte) ([]labelScore, error) {
	var flat []labelScore
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 && flat[0].Label != "" {
		return flat, nil
	}

	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}

	return nil, fmt.Errorf("unexpected inference response shape: %s", preview(body))
}

// labelPolarity converts label scores to a single polarity via a weighted
// average of each label's signed direction, rounded to 3 decimals.
func labelPolarity(scores []labelScore) float64 {
	direction := map[string]float64{"POSITIVE": 1.0, "NEGATIVE": -1.0, "NEUTRAL": 0.0}

	total, weight := 0.0, 0.0
	for _, s := range scores {
		total += direction[strings.ToUpper(s.Label)] * s.Score
		weight += s.Score
	}
	if weight == 0 {
		return 0
	}
	return math.Round(total/weight*1000) / 1000
}

func preview(body []byte) string {
	raw := string(body)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return raw
}

func stateToFloat(state circuitbreaker.State) float64 {
	switch state {
	case circuitbreaker.ClosedState:
		return 0
	case circuitbreaker.HalfOpenState:
		return 1
	default:
		return 2
	}
}
