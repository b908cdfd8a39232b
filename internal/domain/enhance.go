package domain

// Enhancement is the /enhance response: actionable writing feedback,
// produced either by the generative collaborator or the heuristic fallback.
type Enhancement struct {
	WritingTips     []string `json:"writing_tips"`
	ToneSuggestions []string `json:"tone_suggestions"`
	ImprovedVersion string   `json:"improved_version"`
	SocialReady     string   `json:"social_ready"`
	Hashtags        []string `json:"hashtags"`
	KeyTakeaway     string   `json:"key_takeaway"`
}
