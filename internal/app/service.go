package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/Nikhil-NP/vibe-check/internal/analysis"
	"github.com/Nikhil-NP/vibe-check/internal/domain"
	"github.com/Nikhil-NP/vibe-check/internal/genai"
	"github.com/Nikhil-NP/vibe-check/internal/metrics"
	"github.com/Nikhil-NP/vibe-check/internal/scorer"
)

const (
	inferenceTimeout  = 10 * time.Second
	generativeTimeout = 30 * time.Second
)

// Service is the application layer. It orchestrates one analysis request
// end to end and owns no per-request state; optional collaborators may be
// nil, in which case their feature is simply absent from the result.
type Service struct {
	primary      *scorer.Vader
	secondary    *scorer.Pattern
	inference    domain.InferenceScorer
	generative   domain.GenerativeClient
	enhanceCache *enhanceCache
}

// NewService creates the application layer service.
// inference and generative may be nil when unconfigured.
func NewService(inference domain.InferenceScorer, generative domain.GenerativeClient, cacheTTL time.Duration, clock clockwork.Clock) *Service {
	return &Service{
		primary:      scorer.NewVader(),
		secondary:    scorer.NewPattern(),
		inference:    inference,
		generative:   generative,
		enhanceCache: newEnhanceCache(cacheTTL, clock),
	}
}

// Analyze runs the full pipeline over one input text.
func (s *Service) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	normalized := analysis.Normalize(text)
	if normalized == "" {
		return nil, domain.ErrEmptyText
	}
	if utf8.RuneCountInString(normalized) > domain.MaxTextLength {
		return nil, domain.ErrTextTooLong
	}

	primary := s.primary.Score(normalized)
	secondary := s.secondary.Score(normalized)

	var inferencePolarity *float64
	if s.inference != nil {
		ictx, cancel := context.WithTimeout(ctx, inferenceTimeout)
		if p, ok := s.inference.Polarity(ictx, normalized); ok {
			inferencePolarity = &p
		}
		cancel()
	}

	aiAnalysis := s.vibeCheck(ctx, normalized)

	ensemble := analysis.Combine(analysis.EnsembleInput{
		Primary:   primary,
		Secondary: secondary,
		Inference: inferencePolarity,
	})

	emotions, dominant := analysis.Emotions(normalized)
	stats := analysis.Stats(normalized)

	insights := analysis.Insights(normalized)
	insights = append(insights, analysis.AgreementInsight(ensemble.Agreement))
	if msg, ok := analysis.SubjectivityInsight(secondary.Subjectivity); ok {
		insights = append(insights, msg)
	}
	if msg, ok := analysis.FormalityInsight(stats.Formality); ok {
		insights = append(insights, msg)
	}
	if aiAnalysis != nil {
		energy := aiAnalysis.EnergyLevel
		if energy == "" {
			energy = "medium"
		}
		insights = append(insights, fmt.Sprintf("🤖 AI detected %s energy level", energy))
	}

	metrics.AnalysesTotal.WithLabelValues(ensemble.Band.Sentiment).Inc()

	return &domain.AnalysisResult{
		Sentiment:  ensemble.Band.Sentiment,
		Confidence: round3(ensemble.Confidence),
		Scores: domain.ScoreTriple{
			Positive: round3(primary.Positive),
			Neutral:  round3(primary.Neutral),
			Negative: round3(primary.Negative),
		},
		Vibe:            ensemble.Band.Vibe,
		Emoji:           ensemble.Band.Emoji,
		Color:           ensemble.Band.Color,
		Models:          modelBreakdown(primary, secondary, inferencePolarity),
		Emotions:        emotionPayload(emotions),
		DominantEmotion: dominant,
		Insights:        insights,
		TextStats:       stats,
		AIAnalysis:      aiAnalysis,
	}, nil
}

// Suggest produces the three rule-based rewrites.
func (s *Service) Suggest(text string) (*domain.RewriteSet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	rewrites := analysis.Rewrites(text)
	return &rewrites, nil
}

// Enhance returns AI writing feedback when the generative collaborator is
// configured, or heuristic feedback otherwise. A configured collaborator
// that fails or returns unparsable output is a hard error for this endpoint.
func (s *Service) Enhance(ctx context.Context, text string, sentimentData map[string]any) (*domain.Enhancement, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.ErrEmptyText
	}

	if s.generative == nil {
		return s.heuristicEnhancement(trimmed), nil
	}

	key := cacheKey(trimmed, sentimentData)
	if cached, ok := s.enhanceCache.Get(key); ok {
		metrics.EnhanceCacheHits.Inc()
		return cached, nil
	}
	metrics.EnhanceCacheMisses.Inc()

	gctx, cancel := context.WithTimeout(ctx, generativeTimeout)
	defer cancel()

	raw, err := s.generative.Complete(gctx, genai.EnhancePrompt(trimmed, sentimentData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEnhanceFailed, err)
	}

	payload, err := genai.ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEnhanceFailed, err)
	}

	var enhancement domain.Enhancement
	if err := json.Unmarshal([]byte(payload), &enhancement); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEnhanceFailed, err)
	}

	s.enhanceCache.Set(key, &enhancement)
	return &enhancement, nil
}

// vibeCheck asks the generative collaborator for a qualitative read.
// Best-effort: any failure degrades to a nil payload.
func (s *Service) vibeCheck(ctx context.Context, text string) *domain.AIAnalysis {
	if s.generative == nil {
		return nil
	}

	gctx, cancel := context.WithTimeout(ctx, generativeTimeout)
	defer cancel()

	raw, err := s.generative.Complete(gctx, genai.VibeCheckPrompt(text))
	if err != nil {
		slog.WarnContext(ctx, "AI vibe check unavailable, proceeding without it", "error", err)
		return nil
	}

	payload, err := genai.ExtractJSON(raw)
	if err != nil {
		slog.WarnContext(ctx, "AI vibe check returned unparsable output", "error", err)
		return nil
	}

	var result domain.AIAnalysis
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		slog.WarnContext(ctx, "AI vibe check returned malformed JSON", "error", err)
		return nil
	}
	return &result
}

// heuristicEnhancement is the fallback when no generative collaborator is
// configured: tips from the primary model's polarity, the professional
// rewrite as the improved version, and the first two sentences as the
// social-ready cut.
func (s *Service) heuristicEnhancement(text string) *domain.Enhancement {
	compound := s.primary.Score(text).Compound

	var tips []string
	switch {
	case compound < -0.2:
		tips = []string{"Consider softening negative language", "Add constructive alternatives"}
	case compound > 0.5:
		tips = []string{"Great positive tone!"}
	default:
		tips = []string{"Consider adding more emotional language"}
	}

	social := strings.Join(firstN(analysis.SplitSentences(text), 2), " ")
	if social == "" {
		social = text
	}
	if runes := []rune(social); len(runes) > 240 {
		social = string(runes[:240])
	}

	return &domain.Enhancement{
		WritingTips:     tips,
		ToneSuggestions: []string{"Add specific examples", "Use active voice"},
		ImprovedVersion: analysis.Professional(text),
		SocialReady:     social,
		Hashtags:        []string{"#communication", "#writing"},
		KeyTakeaway:     "AI enhancement not configured. Set OPENAI_API_KEY for AI-powered suggestions.",
	}
}

// modelBreakdown builds the per-model score map. The inference key is
// entirely absent when the hosted model did not contribute.
func modelBreakdown(primary domain.PrimaryScore, secondary domain.SecondaryScore, inference *float64) map[string]map[string]float64 {
	pos, neu, neg := secondaryBreakdown(secondary.Polarity)

	models := map[string]map[string]float64{
		string(domain.SourceVader): {
			"compound": round3(primary.Compound),
			"positive": round3(primary.Positive),
			"neutral":  round3(primary.Neutral),
			"negative": round3(primary.Negative),
		},
		string(domain.SourcePattern): {
			"polarity":     round3(secondary.Polarity),
			"subjectivity": round3(secondary.Subjectivity),
			"positive":     round3(pos),
			"neutral":      round3(neu),
			"negative":     round3(neg),
		},
	}

	if inference != nil {
		models[string(domain.SourceInference)] = map[string]float64{
			"polarity": round3(*inference),
		}
	}
	return models
}

// secondaryBreakdown derives a pos/neu/neg triple from the pattern model's
// polarity using the same 0.1 vote thresholds.
func secondaryBreakdown(polarity float64) (pos, neu, neg float64) {
	switch {
	case polarity > 0.1:
		pos = math.Abs(polarity)
		return pos, 1 - pos, 0
	case polarity < -0.1:
		neg = math.Abs(polarity)
		return 0, 1 - neg, neg
	default:
		return 0, 1.0, 0
	}
}

// emotionPayload maps internal emotion categories to response keys.
func emotionPayload(emotions map[string]float64) map[string]float64 {
	return map[string]float64{
		"joy":      emotions["Happy"],
		"anger":    emotions["Angry"],
		"sadness":  emotions["Sad"],
		"fear":     emotions["Fear"],
		"surprise": emotions["Surprise"],
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func firstN(parts []string, n int) []string {
	if len(parts) <= n {
		return parts
	}
	return parts[:n]
}
