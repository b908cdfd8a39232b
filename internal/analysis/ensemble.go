package analysis

import (
	"math"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

// Band is the sentiment classification for a combined polarity.
type Band struct {
	Sentiment string
	Vibe      string
	Emoji     string
	Color     string
}

// BandFor maps combined polarity to its sentiment band. Boundaries are
// inclusive on the upper band: 0.5 is "very positive", 0.2 is "positive",
// -0.2 is "neutral", -0.5 is "negative"/"Slightly Negative".
func BandFor(compound float64) Band {
	switch {
	case compound >= 0.5:
		return Band{"very positive", "Super Positive Vibes!", "🌟", "#10b981"}
	case compound >= 0.2:
		return Band{"positive", "Pretty Positive", "😊", "#22c55e"}
	case compound >= -0.2:
		return Band{"neutral", "Neutral Vibes", "😐", "#6b7280"}
	case compound >= -0.5:
		return Band{"negative", "Slightly Negative", "😕", "#f59e0b"}
	default:
		return Band{"negative", "Very Negative", "😤", "#ef4444"}
	}
}

// Per-model vote thresholds: polarity above voteThreshold is "positive",
// below its negation "negative", else "neutral".
const voteThreshold = 0.1

// Ensemble weights per the combination contract. With the inference model
// present the local models drop to 0.3 each; without it they split evenly.
const (
	weightWithInference    = 0.3
	weightInference        = 0.4
	weightWithoutInference = 0.5
)

// EnsembleInput carries each available model's output into the combiner.
// Inference is nil when the hosted model is unconfigured or failed.
type EnsembleInput struct {
	Primary   domain.PrimaryScore
	Secondary domain.SecondaryScore
	Inference *float64
}

// EnsembleResult is the combined sentiment verdict.
type EnsembleResult struct {
	Compound   float64
	Band       Band
	Confidence float64
	Agreement  float64
	Weights    map[domain.ModelSource]float64
}

// Combine merges the available polarity signals into one verdict.
//
// Votes are collected in first-seen order (primary, secondary, inference) and
// the majority is tie-broken by that same order. Confidence rewards both
// signal strength and consensus: min(1, |compound| * (0.6 + 0.4*agreement)).
func Combine(in EnsembleInput) EnsembleResult {
	weights := map[domain.ModelSource]float64{
		domain.SourceVader:   weightWithoutInference,
		domain.SourcePattern: weightWithoutInference,
	}
	if in.Inference != nil {
		weights[domain.SourceVader] = weightWithInference
		weights[domain.SourcePattern] = weightWithInference
		weights[domain.SourceInference] = weightInference
	}

	compound := in.Primary.Compound*weights[domain.SourceVader] +
		in.Secondary.Polarity*weights[domain.SourcePattern]
	if in.Inference != nil {
		compound += *in.Inference * weights[domain.SourceInference]
	}

	votes := []string{Vote(in.Primary.Compound), Vote(in.Secondary.Polarity)}
	if in.Inference != nil {
		votes = append(votes, Vote(*in.Inference))
	}
	agreement := agreementRatio(votes)

	confidence := math.Min(1.0, math.Abs(compound)*(0.6+0.4*agreement))

	return EnsembleResult{
		Compound:   compound,
		Band:       BandFor(compound),
		Confidence: confidence,
		Agreement:  agreement,
		Weights:    weights,
	}
}

// Vote converts a single model's polarity into its categorical vote.
func Vote(polarity float64) string {
	switch {
	case polarity > voteThreshold:
		return "positive"
	case polarity < -voteThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// agreementRatio returns the fraction of votes matching the majority vote,
// with ties resolved in favor of the vote seen first.
func agreementRatio(votes []string) float64 {
	counts := make(map[string]int, 3)
	for _, v := range votes {
		counts[v]++
	}

	majority := votes[0]
	for _, v := range votes {
		if counts[v] > counts[majority] {
			majority = v
		}
	}
	return float64(counts[majority]) / float64(len(votes))
}

// AgreementInsight describes the consensus tier of the ensemble.
func AgreementInsight(agreement float64) string {
	switch {
	case agreement == 1.0:
		return "✅ All models agree - high confidence!"
	case agreement >= 0.66:
		return "👍 Most models agree"
	default:
		return "⚠️ Models disagree - nuanced sentiment"
	}
}

// SubjectivityInsight flags strongly subjective or strongly objective text.
// ok is false in the middle band, where no insight is added.
func SubjectivityInsight(subjectivity float64) (string, bool) {
	switch {
	case subjectivity > 0.7:
		return "💬 Highly subjective/personal opinion", true
	case subjectivity < 0.3:
		return "📊 Objective and factual tone", true
	default:
		return "", false
	}
}

// FormalityInsight flags notably formal or casual register.
func FormalityInsight(formality float64) (string, bool) {
	switch {
	case formality > 0.7:
		return "👔 Formal/professional language", true
	case formality < 0.4:
		return "😎 Casual/informal tone", true
	default:
		return "", false
	}
}
