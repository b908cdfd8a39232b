package analysis

import "strings"

// Emotion categories in fixed enumeration order. The order is load-bearing:
// dominant-emotion ties resolve to the first category reaching the maximum.
var emotionOrder = []string{"Happy", "Angry", "Sad", "Fear", "Surprise"}

// NeutralEmotion is reported when no lexicon member matches at all.
const NeutralEmotion = "Neutral"

var emotionLexicons = map[string][]string{
	"Happy": {
		"happy", "joy", "great", "excellent", "wonderful", "amazing",
		"love", "good", "best", "awesome", "fantastic", "thrilled", "excited",
		"delighted", "pleased", "glad", "perfect", "brilliant", "😊", "😀", "🎉", "❤️",
	},
	"Angry": {
		"angry", "hate", "terrible", "awful", "worst", "disgusting",
		"furious", "mad", "rage", "annoyed", "frustrated", "irritated", "😠", "😡", "🤬",
	},
	"Sad": {
		"sad", "depressed", "unhappy", "miserable", "disappointed",
		"sorry", "unfortunate", "bad", "upset", "down", "heartbroken", "😢", "😭", "💔",
	},
	"Fear": {
		"fear", "scared", "afraid", "worried", "anxious", "nervous",
		"terrified", "panic", "concern", "frightened", "😨", "😰",
	},
	"Surprise": {
		"surprise", "shocked", "amazed", "unexpected", "wow",
		"omg", "unbelievable", "incredible", "astonishing", "😮", "😲",
	},
}

// Emotions scores the five emotion categories by substring containment
// (deliberately loose - no word boundaries) and normalizes by the total hit
// count, floored at 1. Returns the per-category scores and the dominant
// emotion, tie-broken by enumeration order. A text with zero hits yields the
// uniform distribution and the out-of-band "Neutral" label.
func Emotions(text string) (map[string]float64, string) {
	lower := strings.ToLower(text)

	raw := make(map[string]int, len(emotionOrder))
	total := 0
	for _, emotion := range emotionOrder {
		hits := 0
		for _, marker := range emotionLexicons[emotion] {
			if strings.Contains(lower, marker) {
				hits++
			}
		}
		raw[emotion] = hits
		total += hits
	}

	if total == 0 {
		uniform := make(map[string]float64, len(emotionOrder))
		for _, emotion := range emotionOrder {
			uniform[emotion] = 0.2
		}
		return uniform, NeutralEmotion
	}

	scores := make(map[string]float64, len(emotionOrder))
	for _, emotion := range emotionOrder {
		scores[emotion] = roundTo(float64(raw[emotion])/float64(total), 3)
	}

	dominant := emotionOrder[0]
	for _, emotion := range emotionOrder[1:] {
		if scores[emotion] > scores[dominant] {
			dominant = emotion
		}
	}
	return scores, dominant
}
