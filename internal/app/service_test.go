package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

// stubInference is a deterministic stand-in for the hosted model.
type stubInference struct {
	polarity float64
	ok       bool
	calls    int
}

func (s *stubInference) Polarity(_ context.Context, _ string) (float64, bool) {
	s.calls++
	return s.polarity, s.ok
}

// stubGenerative is a deterministic stand-in for the generative collaborator.
type stubGenerative struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerative) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.response, s.err
}

func newTestService(inference domain.InferenceScorer, generative domain.GenerativeClient) *Service {
	return NewService(inference, generative, 5*time.Minute, clockwork.NewFakeClock())
}

func TestAnalyze_PositiveScenario(t *testing.T) {
	svc := newTestService(nil, nil)

	result, err := svc.Analyze(context.Background(), "This is amazing!!! I love it so much!!!")
	require.NoError(t, err)

	assert.Contains(t, []string{"very positive", "positive"}, result.Sentiment)
	assert.Equal(t, "Happy", result.DominantEmotion)
	assert.Contains(t, result.Insights, "⚡ High energy detected (6 exclamation marks)")
	assert.Contains(t, result.Insights, "💥 Strong emotional language")
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Nil(t, result.AIAnalysis)
}

func TestAnalyze_EmptyTextRejected(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Analyze(context.Background(), "   \n\t ")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestAnalyze_OversizedTextRejected(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Analyze(context.Background(), strings.Repeat("a", domain.MaxTextLength+1))
	assert.ErrorIs(t, err, domain.ErrTextTooLong)
}

func TestAnalyze_ModelBreakdownWithoutInference(t *testing.T) {
	svc := newTestService(nil, nil)

	result, err := svc.Analyze(context.Background(), "This is fine.")
	require.NoError(t, err)

	assert.Contains(t, result.Models, "vader")
	assert.Contains(t, result.Models, "pattern")
	assert.NotContains(t, result.Models, "inference")
}

func TestAnalyze_ModelBreakdownWithInference(t *testing.T) {
	inference := &stubInference{polarity: 0.8, ok: true}
	svc := newTestService(inference, nil)

	result, err := svc.Analyze(context.Background(), "This is fine.")
	require.NoError(t, err)

	require.Contains(t, result.Models, "inference")
	assert.Equal(t, 0.8, result.Models["inference"]["polarity"])
	assert.Equal(t, 1, inference.calls)
}

func TestAnalyze_FailedInferenceDegradesGracefully(t *testing.T) {
	inference := &stubInference{ok: false}
	svc := newTestService(inference, nil)

	result, err := svc.Analyze(context.Background(), "This is fine.")
	require.NoError(t, err)

	assert.NotContains(t, result.Models, "inference")
	assert.Equal(t, 1, inference.calls)
}

func TestAnalyze_VibeCheckPopulatesAIAnalysis(t *testing.T) {
	generative := &stubGenerative{response: `{"sentiment": "positive", "energy_level": "high"}`}
	svc := newTestService(nil, generative)

	result, err := svc.Analyze(context.Background(), "This is fine.")
	require.NoError(t, err)

	require.NotNil(t, result.AIAnalysis)
	assert.Equal(t, "positive", result.AIAnalysis.Sentiment)
	assert.Contains(t, result.Insights, "🤖 AI detected high energy level")
}

func TestAnalyze_MalformedVibeCheckDegradesToNil(t *testing.T) {
	generative := &stubGenerative{response: "not json at all"}
	svc := newTestService(nil, generative)

	result, err := svc.Analyze(context.Background(), "This is fine.")
	require.NoError(t, err)
	assert.Nil(t, result.AIAnalysis)
}

func TestAnalyze_InsightAugmentationOrder(t *testing.T) {
	svc := newTestService(nil, nil)

	result, err := svc.Analyze(context.Background(), "hi")
	require.NoError(t, err)

	// pattern insights come first, the agreement tier directly after
	require.NotEmpty(t, result.Insights)
	agreementIdx := -1
	for i, insight := range result.Insights {
		if strings.Contains(insight, "models") || strings.Contains(insight, "Models") {
			agreementIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, agreementIdx, 1, "agreement insight must follow the pattern insights")
}

func TestSuggest_ReturnsAllRewrites(t *testing.T) {
	svc := newTestService(nil, nil)

	rewrites, err := svc.Suggest("I can't believe u said that, idk what to think!!!")
	require.NoError(t, err)

	assert.Contains(t, rewrites.Professional, "cannot")
	assert.Contains(t, rewrites.Professional, "you")
	assert.Contains(t, rewrites.Professional, "I do not know")
	assert.NotEmpty(t, rewrites.Softer)
	assert.NotEmpty(t, rewrites.Concise)
}

func TestSuggest_EmptyTextRejected(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Suggest("  ")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestEnhance_EmptyTextRejected(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Enhance(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestEnhance_HeuristicFallbackWhenUnconfigured(t *testing.T) {
	svc := newTestService(nil, nil)

	enhancement, err := svc.Enhance(context.Background(), "I hate this terrible thing.", nil)
	require.NoError(t, err)

	assert.Contains(t, enhancement.WritingTips, "Consider softening negative language")
	assert.Contains(t, enhancement.KeyTakeaway, "not configured")
	assert.NotEmpty(t, enhancement.ImprovedVersion)
	assert.NotEmpty(t, enhancement.SocialReady)
}

func TestEnhance_GenerativeSuccess(t *testing.T) {
	generative := &stubGenerative{response: "```json\n" + `{
		"writing_tips": ["be concise"],
		"tone_suggestions": ["warmer"],
		"improved_version": "better text",
		"social_ready": "short text",
		"hashtags": ["writing"],
		"key_takeaway": "solid"
	}` + "\n```"}
	svc := newTestService(nil, generative)

	enhancement, err := svc.Enhance(context.Background(), "some text", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"be concise"}, enhancement.WritingTips)
	assert.Equal(t, "better text", enhancement.ImprovedVersion)
}

func TestEnhance_ResponseCached(t *testing.T) {
	generative := &stubGenerative{response: `{"key_takeaway": "cached"}`}
	svc := newTestService(nil, generative)

	_, err := svc.Enhance(context.Background(), "same text", nil)
	require.NoError(t, err)
	_, err = svc.Enhance(context.Background(), "same text", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, generative.calls)
}

func TestEnhance_DistinctSentimentDataBypassesCache(t *testing.T) {
	generative := &stubGenerative{response: `{"key_takeaway": "ok"}`}
	svc := newTestService(nil, generative)

	_, err := svc.Enhance(context.Background(), "same text", nil)
	require.NoError(t, err)
	_, err = svc.Enhance(context.Background(), "same text", map[string]any{"sentiment": "positive"})
	require.NoError(t, err)

	assert.Equal(t, 2, generative.calls)
}

func TestEnhance_CollaboratorFailureIsHardError(t *testing.T) {
	generative := &stubGenerative{err: errors.New("upstream down")}
	svc := newTestService(nil, generative)

	_, err := svc.Enhance(context.Background(), "some text", nil)
	assert.ErrorIs(t, err, domain.ErrEnhanceFailed)
}

func TestEnhance_UnparsableOutputIsHardError(t *testing.T) {
	generative := &stubGenerative{response: "no json here"}
	svc := newTestService(nil, generative)

	_, err := svc.Enhance(context.Background(), "some text", nil)
	assert.ErrorIs(t, err, domain.ErrEnhanceFailed)
}
