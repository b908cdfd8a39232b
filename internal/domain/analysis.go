package domain

import "context"

// MaxTextLength is the largest input /analyze accepts, in runes.
const MaxTextLength = 5000

// ModelSource identifies which scorer produced a polarity signal.
type ModelSource string

const (
	SourceVader     ModelSource = "vader"
	SourcePattern   ModelSource = "pattern"
	SourceInference ModelSource = "inference"
)

// PolaritySignal is one model's contribution to the ensemble.
// Polarity is in [-1, 1], Weight in [0, 1].
type PolaritySignal struct {
	Source   ModelSource
	Polarity float64
	Weight   float64
}

// PrimaryScore is the lexicon model's full polarity breakdown.
type PrimaryScore struct {
	Compound float64
	Positive float64
	Neutral  float64
	Negative float64
}

// SecondaryScore is the pattern model's polarity plus subjectivity.
// Polarity lies in [-1, 1], subjectivity in [0, 1].
type SecondaryScore struct {
	Polarity     float64
	Subjectivity float64
}

// TextStats are surface-level metrics of the analyzed text.
type TextStats struct {
	WordCount      int     `json:"word_count"`
	CharacterCount int     `json:"character_count"`
	SentenceCount  int     `json:"sentence_count"`
	AvgWordLength  float64 `json:"avg_word_length"`
	Formality      float64 `json:"formality"`
}

// ScoreTriple is a positive/neutral/negative breakdown, each in [0, 1].
type ScoreTriple struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// AIAnalysis is the best-effort payload from the generative collaborator.
// All fields are optional; the struct is nil when the collaborator is
// unconfigured, fails, or returns unparsable output.
type AIAnalysis struct {
	Sentiment       string   `json:"sentiment"`
	Confidence      float64  `json:"confidence"`
	VibeDescription string   `json:"vibe_description"`
	EmotionalTone   string   `json:"emotional_tone"`
	KeyPhrases      []string `json:"key_phrases"`
	Reasoning       string   `json:"reasoning"`
	MoodScore       float64  `json:"mood_score"`
	EnergyLevel     string   `json:"energy_level"`
	Formality       string   `json:"formality"`
}

// AnalysisResult is the complete response for one analysis request.
// Constructed fresh per request; no shared mutable state.
type AnalysisResult struct {
	Sentiment       string                        `json:"sentiment"`
	Confidence      float64                       `json:"confidence"`
	Scores          ScoreTriple                   `json:"scores"`
	Vibe            string                        `json:"vibe"`
	Emoji           string                        `json:"emoji"`
	Color           string                        `json:"color"`
	Models          map[string]map[string]float64 `json:"models"`
	Emotions        map[string]float64            `json:"emotions"`
	DominantEmotion string                        `json:"dominant_emotion"`
	Insights        []string                      `json:"insights"`
	TextStats       TextStats                     `json:"text_stats"`
	AIAnalysis      *AIAnalysis                   `json:"ai_analysis"`
}

// RewriteSet holds the three rule-based rewrites of an input text.
type RewriteSet struct {
	Softer       string `json:"softer"`
	Professional string `json:"professional"`
	Concise      string `json:"concise"`
}

// AnalysisService is the application surface the HTTP layer depends on.
type AnalysisService interface {
	Analyze(ctx context.Context, text string) (*AnalysisResult, error)
	Suggest(text string) (*RewriteSet, error)
	Enhance(ctx context.Context, text string, sentimentData map[string]any) (*Enhancement, error)
}

// InferenceScorer scores text with an optional hosted model.
// ok is false when the model is unavailable or the call failed; callers
// proceed without the signal.
type InferenceScorer interface {
	Polarity(ctx context.Context, text string) (polarity float64, ok bool)
}

// GenerativeClient produces a free-text completion for a prompt.
type GenerativeClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
