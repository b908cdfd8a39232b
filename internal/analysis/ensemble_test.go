package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

func TestBandFor_BoundaryInclusion(t *testing.T) {
	tests := []struct {
		compound  float64
		sentiment string
		vibe      string
	}{
		{0.5, "very positive", "Super Positive Vibes!"},
		{0.49999, "positive", "Pretty Positive"},
		{0.2, "positive", "Pretty Positive"},
		{0.19999, "neutral", "Neutral Vibes"},
		{-0.2, "neutral", "Neutral Vibes"},
		{-0.20001, "negative", "Slightly Negative"},
		{-0.5, "negative", "Slightly Negative"},
		{-0.50001, "negative", "Very Negative"},
		{1.0, "very positive", "Super Positive Vibes!"},
		{-1.0, "negative", "Very Negative"},
	}

	for _, tt := range tests {
		band := BandFor(tt.compound)
		assert.Equal(t, tt.sentiment, band.Sentiment, "compound=%v", tt.compound)
		assert.Equal(t, tt.vibe, band.Vibe, "compound=%v", tt.compound)
	}
}

func TestBandFor_MetadataComplete(t *testing.T) {
	for _, compound := range []float64{0.8, 0.3, 0.0, -0.3, -0.8} {
		band := BandFor(compound)
		assert.NotEmpty(t, band.Emoji)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, band.Color)
	}
}

func TestCombine_WeightsWithoutInference(t *testing.T) {
	result := Combine(EnsembleInput{
		Primary:   domain.PrimaryScore{Compound: 0.8},
		Secondary: domain.SecondaryScore{Polarity: 0.6},
	})

	require.Len(t, result.Weights, 2)
	assert.Equal(t, 0.5, result.Weights[domain.SourceVader])
	assert.Equal(t, 0.5, result.Weights[domain.SourcePattern])
	assert.InDelta(t, 0.7, result.Compound, 0.0001)
}

func TestCombine_WeightsWithInference(t *testing.T) {
	inference := 0.5
	result := Combine(EnsembleInput{
		Primary:   domain.PrimaryScore{Compound: 1.0},
		Secondary: domain.SecondaryScore{Polarity: 1.0},
		Inference: &inference,
	})

	require.Len(t, result.Weights, 3)
	assert.Equal(t, 0.3, result.Weights[domain.SourceVader])
	assert.Equal(t, 0.3, result.Weights[domain.SourcePattern])
	assert.Equal(t, 0.4, result.Weights[domain.SourceInference])
	// 1.0*0.3 + 1.0*0.3 + 0.5*0.4
	assert.InDelta(t, 0.8, result.Compound, 0.0001)
}

func TestCombine_AgreementAllAgree(t *testing.T) {
	result := Combine(EnsembleInput{
		Primary:   domain.PrimaryScore{Compound: 0.6},
		Secondary: domain.SecondaryScore{Polarity: 0.4},
	})
	assert.Equal(t, 1.0, result.Agreement)
}

func TestCombine_AgreementTieFavorsFirstSeen(t *testing.T) {
	// positive vs neutral, one vote each: majority resolves to the
	// primary model's vote, agreement 1/2.
	result := Combine(EnsembleInput{
		Primary:   domain.PrimaryScore{Compound: 0.5},
		Secondary: domain.SecondaryScore{Polarity: 0.0},
	})
	assert.Equal(t, 0.5, result.Agreement)
}

func TestCombine_ConfidenceFormula(t *testing.T) {
	result := Combine(EnsembleInput{
		Primary:   domain.PrimaryScore{Compound: 0.5},
		Secondary: domain.SecondaryScore{Polarity: 0.0},
	})
	// compound 0.25, agreement 0.5 -> 0.25 * (0.6 + 0.2) = 0.2
	assert.InDelta(t, 0.2, result.Confidence, 0.0001)
}

func TestCombine_ConfidenceMonotonicInSignalStrength(t *testing.T) {
	prev := -1.0
	for _, compound := range []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0} {
		result := Combine(EnsembleInput{
			Primary:   domain.PrimaryScore{Compound: compound},
			Secondary: domain.SecondaryScore{Polarity: compound},
		})
		assert.GreaterOrEqual(t, result.Confidence, prev)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
		prev = result.Confidence
	}
}

func TestCombine_ConfidenceCappedAtOne(t *testing.T) {
	inference := 1.0
	result := Combine(EnsembleInput{
		Primary:   domain.PrimaryScore{Compound: 1.0},
		Secondary: domain.SecondaryScore{Polarity: 1.0},
		Inference: &inference,
	})
	assert.Equal(t, 1.0, result.Confidence)
}

func TestVote_Thresholds(t *testing.T) {
	assert.Equal(t, "positive", Vote(0.11))
	assert.Equal(t, "neutral", Vote(0.1))
	assert.Equal(t, "neutral", Vote(0.0))
	assert.Equal(t, "neutral", Vote(-0.1))
	assert.Equal(t, "negative", Vote(-0.11))
}

func TestAgreementInsight_Tiers(t *testing.T) {
	assert.Equal(t, "✅ All models agree - high confidence!", AgreementInsight(1.0))
	assert.Equal(t, "👍 Most models agree", AgreementInsight(0.67))
	assert.Equal(t, "⚠️ Models disagree - nuanced sentiment", AgreementInsight(0.5))
}

func TestSubjectivityInsight_Tiers(t *testing.T) {
	msg, ok := SubjectivityInsight(0.8)
	assert.True(t, ok)
	assert.Contains(t, msg, "subjective")

	msg, ok = SubjectivityInsight(0.2)
	assert.True(t, ok)
	assert.Contains(t, msg, "Objective")

	_, ok = SubjectivityInsight(0.5)
	assert.False(t, ok)
}

func TestFormalityInsight_Tiers(t *testing.T) {
	msg, ok := FormalityInsight(0.8)
	assert.True(t, ok)
	assert.Contains(t, msg, "Formal")

	msg, ok = FormalityInsight(0.3)
	assert.True(t, ok)
	assert.Contains(t, msg, "Casual")

	_, ok = FormalityInsight(0.5)
	assert.False(t, ok)
}
