package analysis

import (
	"regexp"
	"strings"
)

// Contraction expansion table. Order matters: the most specific patterns
// come first so that e.g. "can't" never decays into "ca not" via the
// generic "n't" rule.
var contractionPatterns = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)can't`), "cannot"},
	{regexp.MustCompile(`(?i)won't`), "will not"},
	{regexp.MustCompile(`(?i)n't`), " not"},
	{regexp.MustCompile(`(?i)'re`), " are"},
	{regexp.MustCompile(`(?i)'s`), " is"},
	{regexp.MustCompile(`(?i)'d`), " would"},
	{regexp.MustCompile(`(?i)'ll`), " will"},
	{regexp.MustCompile(`(?i)'ve`), " have"},
	{regexp.MustCompile(`(?i)'m`), " am"},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize trims the input, collapses whitespace runs to single spaces,
// and expands contractions. The result may be empty; callers validate.
func Normalize(text string) string {
	t := strings.TrimSpace(text)
	t = whitespaceRun.ReplaceAllString(t, " ")
	return ExpandContractions(t)
}

// ExpandContractions applies the fixed contraction table case-insensitively.
func ExpandContractions(text string) string {
	s := text
	for _, c := range contractionPatterns {
		s = c.pattern.ReplaceAllString(s, c.repl)
	}
	return s
}
