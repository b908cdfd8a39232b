package genai

import (
	"encoding/json"
	"fmt"
)

// VibeCheckPrompt asks for a qualitative sentiment read of the text as
// strict JSON matching domain.AIAnalysis.
func VibeCheckPrompt(text string) string {
	return fmt.Sprintf(`Analyze the sentiment and vibe of this text. Return ONLY valid JSON with this exact structure:

{
  "sentiment": "positive/negative/neutral",
  "confidence": 0.85,
  "vibe_description": "brief creative description of the overall vibe",
  "emotional_tone": "the dominant emotional tone",
  "key_phrases": ["notable phrase 1", "notable phrase 2"],
  "reasoning": "brief explanation of why you arrived at this sentiment",
  "mood_score": 0.75,
  "energy_level": "high/medium/low",
  "formality": "formal/casual/neutral"
}

Text to analyze:
%q

Return only the JSON object, no markdown formatting or additional text.`, text)
}

// EnhancePrompt asks for actionable writing improvements as strict JSON
// matching domain.Enhancement. sentimentData, when present, is echoed into
// the prompt so the model can build on the quantitative analysis.
func EnhancePrompt(text string, sentimentData map[string]any) string {
	sentimentInfo := ""
	if len(sentimentData) > 0 {
		if encoded, err := json.Marshal(sentimentData); err == nil {
			sentimentInfo = fmt.Sprintf("\n\nCurrent sentiment analysis: %s", encoded)
		}
	}

	return fmt.Sprintf(`Analyze this text and provide actionable writing improvements. Return ONLY valid JSON with these keys:

{
  "writing_tips": ["3-4 specific actionable tips"],
  "tone_suggestions": ["2-3 tone adjustments"],
  "improved_version": "rewritten version with better flow",
  "social_ready": "engaging social media version (max 240 chars)",
  "hashtags": ["3 relevant hashtags without # symbol"],
  "key_takeaway": "one sentence main insight"
}

Text:%s

%q

Return only the JSON, no markdown formatting.`, sentimentInfo, text)
}
