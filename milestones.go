package networth

// Milestone is a net worth threshold worth celebrating.
type Milestone struct {
	Label     string  `json:"label"`
	Threshold float64 `json:"threshold"`
	Icon      string  `json:"icon"`
	Achieved  bool    `json:"achieved"`
}

// milestones is the catalog, in ascending threshold order.
var milestones = []Milestone{
	{Label: "Debt Free", Threshold: 0, Icon: "🎯"},
	{Label: "$1K Saved", Threshold: 1_000, Icon: "🌱"},
	{Label: "$10K Club", Threshold: 10_000, Icon: "💪"},
	{Label: "$50K Milestone", Threshold: 50_000, Icon: "🔥"},
	{Label: "$100K Club", Threshold: 100_000, Icon: "⭐"},
	{Label: "Quarter Million", Threshold: 250_000, Icon: "🏆"},
	{Label: "Half Million", Threshold: 500_000, Icon: "💎"},
	{Label: "Millionaire", Threshold: 1_000_000, Icon: "👑"},
}

// Milestones returns the catalog with each milestone marked achieved when
// netWorth reaches its threshold.
func Milestones(netWorth float64) []Milestone {
	res := make([]Milestone, len(milestones))
	for i, m := range milestones {
		m.Achieved = netWorth >= m.Threshold
		res[i] = m
	}
	return res
}

// NextMilestone returns the first milestone not yet achieved.
func NextMilestone(netWorth float64) (Milestone, bool) {
	for _, m := range Milestones(netWorth) {
		if !m.Achieved {
			return m, true
		}
	}
	return Milestone{}, false
}
