// Package scorer provides the local polarity models feeding the ensemble:
// a VADER lexicon scorer and an independent pattern-based scorer.
package scorer

import (
	"github.com/jonreiter/govader"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

// Vader wraps the govader intensity analyzer as the primary sentiment model.
// The analyzer is stateless per call, so one instance serves all requests.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader builds the primary model. Lexicon loading happens once here.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity and its pos/neu/neg breakdown.
func (v *Vader) Score(text string) domain.PrimaryScore {
	s := v.analyzer.PolarityScores(text)
	return domain.PrimaryScore{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
	}
}
