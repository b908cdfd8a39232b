package scorer

import (
	"math"
	"strings"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

// Pattern is the secondary sentiment model: a small word-list scorer that
// produces a polarity plus a subjectivity estimate, deliberately independent
// of the VADER lexicon so the two models can disagree.
type Pattern struct{}

// NewPattern builds the secondary model.
func NewPattern() *Pattern {
	return &Pattern{}
}

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "amazing": {}, "wonderful": {},
	"fantastic": {}, "awesome": {}, "love": {}, "like": {}, "enjoy": {},
	"happy": {}, "best": {}, "perfect": {}, "brilliant": {}, "beautiful": {},
	"nice": {}, "pleasant": {}, "delightful": {}, "superb": {}, "glad": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "hate": {},
	"worst": {}, "poor": {}, "disappointing": {}, "disgusting": {}, "sad": {},
	"angry": {}, "annoying": {}, "boring": {}, "ugly": {}, "unpleasant": {},
	"dreadful": {}, "miserable": {}, "pathetic": {}, "useless": {}, "broken": {},
}

// Words that mark opinionated framing without carrying polarity themselves.
var opinionMarkers = map[string]struct{}{
	"think": {}, "feel": {}, "believe": {}, "opinion": {}, "seems": {},
	"probably": {}, "maybe": {}, "really": {}, "very": {}, "totally": {},
	"absolutely": {}, "definitely": {}, "honestly": {}, "personally": {},
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "hardly": {}, "scarcely": {}, "barely": {},
}

// Score tokenizes on whitespace (punctuation trimmed per token) and derives:
//
//	polarity     = (pos - neg) / max(pos+neg, 1), in [-1, 1]
//	subjectivity = capped share of opinionated tokens, in [0, 1]
//
// A sentiment word directly preceded by a negator flips its valence.
func (p *Pattern) Score(text string) domain.SecondaryScore {
	tokens := tokenize(text)

	pos, neg, subjective := 0, 0, 0
	negated := false
	for _, tok := range tokens {
		if _, ok := negators[tok]; ok {
			negated = true
			continue
		}

		_, isPos := positiveWords[tok]
		_, isNeg := negativeWords[tok]
		if isPos || isNeg {
			subjective++
			if negated {
				isPos, isNeg = isNeg, isPos
			}
			if isPos {
				pos++
			} else {
				neg++
			}
		} else if _, ok := opinionMarkers[tok]; ok {
			subjective++
		}
		negated = false
	}

	polarity := float64(pos-neg) / float64(max(pos+neg, 1))
	subjectivity := math.Min(1.0, 2.5*float64(subjective)/float64(max(len(tokens), 1)))

	return domain.SecondaryScore{
		Polarity:     polarity,
		Subjectivity: subjectivity,
	}
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.Trim(f, `.,!?;:'"()[]`); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
