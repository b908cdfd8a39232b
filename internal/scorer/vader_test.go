package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVader_PolarityDirection(t *testing.T) {
	v := NewVader()

	assert.Greater(t, v.Score("This is amazing, I love it!").Compound, 0.0)
	assert.Less(t, v.Score("This is terrible, I hate it.").Compound, 0.0)
}

func TestVader_CompoundInRange(t *testing.T) {
	v := NewVader()

	for _, text := range []string{
		"absolutely wonderful fantastic best day ever!!!",
		"worst most horrible disgusting awful thing",
		"the sky is blue",
	} {
		compound := v.Score(text).Compound
		assert.GreaterOrEqual(t, compound, -1.0, "text %q", text)
		assert.LessOrEqual(t, compound, 1.0, "text %q", text)
	}
}

func TestVader_BreakdownSumsToOne(t *testing.T) {
	score := NewVader().Score("This is amazing, I love it!")
	assert.InDelta(t, 1.0, score.Positive+score.Neutral+score.Negative, 0.01)
}
