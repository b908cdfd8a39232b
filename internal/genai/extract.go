package genai

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls a JSON object out of a model reply: markdown code fences
// are stripped, then everything between the first '{' and the last '}' is
// returned. Models regularly wrap JSON in fences or prose despite explicit
// instructions, so this is the contract boundary for "parseable output".
func ExtractJSON(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		lines := strings.Split(cleaned, "\n")
		if strings.HasPrefix(lines[0], "```") {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "```") {
			lines = lines[:len(lines)-1]
		}
		cleaned = strings.Join(lines, "\n")
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}

	return cleaned[start : end+1], nil
}
