package analysis

import (
	"regexp"
	"strings"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

var (
	exclamationRun = regexp.MustCompile(`!+`)
	softenPattern  = regexp.MustCompile(`(?i)\b(hate|terrible|awful|worst)\b`)
	slangPattern   = regexp.MustCompile(`(?i)\b(imo|idk|u)\b`)
	// keep word characters, whitespace, sentence separators and quotes
	punctStrip   = regexp.MustCompile(`[^\w\s.,'"-]+`)
	sentenceLike = regexp.MustCompile(`[^.!?]*[.!?]+|[^.!?]+$`)
)

var softenReplacements = map[string]string{
	"hate":     "dislike",
	"terrible": "unpleasant",
	"awful":    "unfortunate",
	"worst":    "not great",
}

var slangReplacements = map[string]string{
	"imo": "in my opinion",
	"idk": "I do not know",
	"u":   "you",
}

const (
	conciseLimit  = 200
	conciseCutoff = 197
)

// Rewrites produces the three rule-based rewrites of the trimmed input.
func Rewrites(text string) domain.RewriteSet {
	return domain.RewriteSet{
		Softer:       Softer(text),
		Professional: Professional(text),
		Concise:      Concise(text),
	}
}

// Softer collapses repeated exclamation marks and substitutes a fixed map of
// strong words with milder alternatives. Idempotent on already-soft text.
func Softer(text string) string {
	s := exclamationRun.ReplaceAllString(strings.TrimSpace(text), "!")
	return softenPattern.ReplaceAllStringFunc(s, func(m string) string {
		return softenReplacements[strings.ToLower(m)]
	})
}

// Professional expands contractions, replaces informal abbreviations, and
// strips characters outside word/space/sentence-separator/quote classes.
func Professional(text string) string {
	p := ExpandContractions(strings.TrimSpace(text))
	p = slangPattern.ReplaceAllStringFunc(p, func(m string) string {
		return slangReplacements[strings.ToLower(m)]
	})
	return punctStrip.ReplaceAllString(p, "")
}

// Concise keeps the first two sentences, truncating at a word boundary with
// a trailing ellipsis if the result still exceeds 200 characters.
func Concise(text string) string {
	s := strings.TrimSpace(text)
	sentences := SplitSentences(s)

	concise := strings.Join(firstN(sentences, 2), " ")
	if concise == "" {
		concise = s
	}

	if runes := []rune(concise); len(runes) > conciseLimit {
		cut := string(runes[:conciseCutoff])
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
		concise = cut + "..."
	}
	return concise
}

// SplitSentences splits on sentence-final punctuation, keeping the
// punctuation attached to its sentence.
func SplitSentences(text string) []string {
	parts := sentenceLike.FindAllString(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstN(parts []string, n int) []string {
	if len(parts) <= n {
		return parts
	}
	return parts[:n]
}
