package networth

// GoalStatus is the progress of a goal on a given day.
type GoalStatus struct {
	Goal          Goal
	Progress      Percent
	MonthsLeft    int
	MonthlyTarget float64
	Reached       bool
}

// Summary gathers every figure derived from the aggregate on a given day.
// It is a stateless calculator result: build a new one after each change.
type Summary struct {
	On Date
	Totals
	Health          HealthLevel
	HealthPercent   Percent
	Insights        []Insight
	Milestones      []Milestone
	Recommendations []string
	Goal            *GoalStatus // nil without a goal
}

// NewSummary derives the summary of data on the given day.
func NewSummary(data FinancialData, on Date) Summary {
	t := data.Totals()
	s := Summary{
		On:              on,
		Totals:          t,
		Health:          HealthLevelOf(t.NetWorth, t.TotalAssets, t.TotalLiabilities),
		HealthPercent:   HealthPercent(t.NetWorth, t.TotalAssets, t.TotalLiabilities),
		Insights:        GenerateInsights(data.Assets, data.Liabilities),
		Milestones:      Milestones(t.NetWorth),
		Recommendations: BudgetRecommendations(t.TotalAssets, t.TotalLiabilities),
	}
	if data.Goal != nil {
		g := *data.Goal
		s.Goal = &GoalStatus{
			Goal:          g,
			Progress:      GoalProgress(g, t.NetWorth),
			MonthsLeft:    MonthsLeft(g, on),
			MonthlyTarget: MonthlyTargetSavingsOn(g, t.NetWorth, on),
			Reached:       t.NetWorth >= g.TargetNetWorth,
		}
	}
	return s
}

// AchievedMilestones counts the milestones reached.
func (s Summary) AchievedMilestones() int {
	n := 0
	for _, m := range s.Milestones {
		if m.Achieved {
			n++
		}
	}
	return n
}
