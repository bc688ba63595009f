package networth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achieved(ms []Milestone) []string {
	var res []string
	for _, m := range ms {
		if m.Achieved {
			res = append(res, m.Label)
		}
	}
	return res
}

func TestMilestones(t *testing.T) {
	require.Len(t, Milestones(0), 8)

	assert.Equal(t, []string{"Debt Free"}, achieved(Milestones(0)))
	assert.Empty(t, achieved(Milestones(-1)))
	assert.Equal(t, []string{"Debt Free", "$1K Saved", "$10K Club"}, achieved(Milestones(49_999)))
	assert.Len(t, achieved(Milestones(1_000_000)), 8)
}

func TestMilestones_DoesNotMutateCatalog(t *testing.T) {
	Milestones(1_000_000)
	for _, m := range milestones {
		assert.False(t, m.Achieved, m.Label)
	}
}

func TestNextMilestone(t *testing.T) {
	m, ok := NextMilestone(20_000)
	require.True(t, ok)
	assert.Equal(t, "$50K Milestone", m.Label)
	assert.Equal(t, "🔥", m.Icon)

	_, ok = NextMilestone(2_000_000)
	assert.False(t, ok)
}
