package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	capsWordPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	negationPattern = regexp.MustCompile(`\b(not|no|never|none|nobody|nothing|neither|nowhere|hardly|scarcely|barely)\b`)
)

var sarcasmMarkers = []string{"yeah right", "sure", "totally", "obviously", "of course"}

// strong sentiment words; each counts once regardless of repetition
var strongWords = []string{"hate", "love", "amazing", "terrible", "awful", "worst", "best"}

// countEmoji counts runes in the emoticon, symbols/pictographs,
// and transport Unicode blocks.
func countEmoji(text string) int {
	n := 0
	for _, r := range text {
		if (r >= 0x1F600 && r <= 0x1F64F) ||
			(r >= 0x1F300 && r <= 0x1F5FF) ||
			(r >= 0x1F680 && r <= 0x1F6FF) {
			n++
		}
	}
	return n
}

// Insights scans normalized text for notable writing patterns. Rules are
// evaluated independently in a fixed order, so identical input always yields
// identical ordered output. Never returns an empty slice.
func Insights(text string) []string {
	var insights []string

	if n := strings.Count(text, "!"); n >= 3 {
		insights = append(insights, fmt.Sprintf("⚡ High energy detected (%d exclamation marks)", n))
	}

	if n := strings.Count(text, "?"); n >= 3 {
		insights = append(insights, fmt.Sprintf("🤔 Question-heavy text (%d questions)", n))
	}

	if caps := capsWordPattern.FindAllString(text, -1); len(caps) >= 2 {
		insights = append(insights, fmt.Sprintf("📢 Intense language (%d words in CAPS)", len(caps)))
	}

	if n := countEmoji(text); n >= 3 {
		insights = append(insights, fmt.Sprintf("😀 Emoji-rich text (%d emojis)", n))
	}

	if strings.Contains(text, "...") || strings.Contains(text, "…") {
		insights = append(insights, "💭 Contains ellipsis - thoughtful or uncertain")
	}

	lower := strings.ToLower(text)

	for _, marker := range sarcasmMarkers {
		if strings.Contains(lower, marker) {
			insights = append(insights, "🎭 Possible sarcasm detected")
			break
		}
	}

	if n := len(negationPattern.FindAllString(lower, -1)); n >= 2 {
		insights = append(insights, fmt.Sprintf("🔄 Multiple negations (%d) - complex sentiment", n))
	}

	strongCount := 0
	for _, w := range strongWords {
		if strings.Contains(lower, w) {
			strongCount++
		}
	}
	if strongCount >= 2 {
		insights = append(insights, "💥 Strong emotional language")
	}

	if len(insights) == 0 {
		return []string{"📝 Clean, straightforward text"}
	}
	return insights
}
