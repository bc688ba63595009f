package networth

// BudgetRecommendations returns budgeting advice for the totals, in a fixed order:
// debt repayment, emergency fund, liquidity, the 50/30/20 rule (always), and
// diversification.
func BudgetRecommendations(totalAssets, totalLiabilities float64) []string {
	recs := []string{}

	// The ratio is 0 without assets: a user with only debt gets no repayment advice.
	ratio := 0.0
	if totalLiabilities > 0 && totalAssets != 0 {
		ratio = totalLiabilities / totalAssets
	}
	if ratio > 0.5 {
		recs = append(recs, "Allocate at least 20% of income to debt repayment using the avalanche method (highest interest first).")
	}

	if totalAssets < 1000 {
		recs = append(recs, "Build a $1,000 emergency fund before aggressive investing. Start with a high-yield savings account.")
	}

	// rough estimate: a tenth of the assets is liquid.
	if totalAssets*0.1 < totalLiabilities*0.05 {
		recs = append(recs, "Keep 3-6 months of expenses in liquid savings for emergencies.")
	}

	recs = append(recs, "Follow the 50/30/20 rule: 50% needs, 30% wants, 20% savings & debt repayment.")

	if totalAssets > 10000 {
		recs = append(recs, "Consider diversifying investments across stocks, bonds, and real estate.")
	}
	return recs
}
