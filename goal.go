package networth

import "time"

// Goal is a target net worth to reach by a deadline.
type Goal struct {
	TargetNetWorth float64   `json:"targetNetWorth"`
	Deadline       Date      `json:"deadline"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GoalProgress returns how much of the target the current net worth
// represents. A target that is not positive counts as already met.
func GoalProgress(goal Goal, currentNetWorth float64) Percent {
	if goal.TargetNetWorth <= 0 {
		return 100
	}
	return clampPercent(currentNetWorth / goal.TargetNetWorth * 100)
}

// MonthsLeft returns the number of calendar months between on and the goal
// deadline, at least 1. Days of the month are ignored.
func MonthsLeft(goal Goal, on Date) int {
	return max(1, on.MonthsUntil(goal.Deadline))
}

// MonthlyTargetSavings is MonthlyTargetSavingsOn today.
func MonthlyTargetSavings(goal Goal, currentNetWorth float64) float64 {
	return MonthlyTargetSavingsOn(goal, currentNetWorth, Today())
}

// MonthlyTargetSavingsOn returns the amount to save every month, starting on
// the given day, to close the gap to the goal by its deadline. It is 0 once
// the goal is reached.
func MonthlyTargetSavingsOn(goal Goal, currentNetWorth float64, on Date) float64 {
	gap := goal.TargetNetWorth - currentNetWorth
	if gap <= 0 {
		return 0
	}
	return gap / float64(MonthsLeft(goal, on))
}
