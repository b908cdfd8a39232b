package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

// formalityDivisor normalizes average word length into [0, 1]; seven-letter
// average words count as fully formal register.
const formalityDivisor = 7.0

// Stats computes surface metrics of the (normalized) text.
// sentence_count is floored at 1 to avoid division by zero downstream.
func Stats(text string) domain.TextStats {
	words := strings.Fields(text)

	sentences := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
	if sentences < 1 {
		sentences = 1
	}

	totalLen := 0
	for _, w := range words {
		totalLen += utf8.RuneCountInString(w)
	}
	avgWordLength := float64(totalLen) / float64(max(len(words), 1))

	formality := math.Min(avgWordLength/formalityDivisor, 1.0)

	return domain.TextStats{
		WordCount:      len(words),
		CharacterCount: utf8.RuneCountInString(text),
		SentenceCount:  sentences,
		AvgWordLength:  roundTo(avgWordLength, 1),
		Formality:      roundTo(formality, 2),
	}
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
