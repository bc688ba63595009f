package networth

// HealthLevel is a discrete grade of the asset to liability leverage.
type HealthLevel string

const (
	Excellent HealthLevel = "excellent"
	Good      HealthLevel = "good"
	Fair      HealthLevel = "fair"
	Poor      HealthLevel = "poor"
	Critical  HealthLevel = "critical"
)

// noDebtRatio is the asset to liability ratio used when there are no liabilities.
const noDebtRatio = 10

// HealthLevelOf grades the financial health from the three totals.
//
// Without any assets or liabilities the level is Fair. Otherwise the
// assets/liabilities ratio decides: a negative net worth is Critical below
// 0.5 and Poor above; a non negative net worth is Excellent above 5, Good
// above 2 and Fair otherwise. Boundaries fall to the lower tier.
func HealthLevelOf(netWorth, totalAssets, totalLiabilities float64) HealthLevel {
	if totalAssets == 0 && totalLiabilities == 0 {
		return Fair
	}
	ratio := float64(noDebtRatio)
	if totalLiabilities > 0 {
		ratio = totalAssets / totalLiabilities
	}
	if netWorth < 0 {
		if ratio < 0.5 {
			return Critical
		}
		return Poor
	}
	switch {
	case ratio > 5:
		return Excellent
	case ratio > 2:
		return Good
	default:
		return Fair
	}
}

// HealthPercent is a continuous proxy of the health level for gauges: 50
// without data, 100 without liabilities, and 20 times the
// assets/liabilities ratio otherwise, clamped to [0, 100].
func HealthPercent(netWorth, totalAssets, totalLiabilities float64) Percent {
	if totalAssets == 0 && totalLiabilities == 0 {
		return 50
	}
	if totalLiabilities == 0 {
		return 100
	}
	return clampPercent(totalAssets / totalLiabilities * 20)
}

// Color returns the display color of the level.
func (h HealthLevel) Color() string {
	switch h {
	case Excellent:
		return "#10b981"
	case Good:
		return "#34d399"
	case Fair:
		return "#fbbf24"
	case Poor:
		return "#f97316"
	case Critical:
		return "#ef4444"
	}
	return "#fbbf24"
}

// Label returns the level with a leading capital.
func (h HealthLevel) Label() string {
	switch h {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Fair:
		return "Fair"
	case Poor:
		return "Poor"
	case Critical:
		return "Critical"
	}
	return string(h)
}
