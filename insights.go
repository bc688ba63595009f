package networth

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// InsightKind tags an insight for display.
type InsightKind string

const (
	Positive InsightKind = "positive"
	Warning  InsightKind = "warning"
	Info     InsightKind = "info"
)

// Insight is an observation about the current assets and liabilities. It is never persisted.
type Insight struct {
	Kind InsightKind `json:"type"`
	Text string      `json:"text"`
}

// creditCardThreshold is the credit card balance above which a warning is raised.
const creditCardThreshold = 5000

// GenerateInsights evaluates a fixed list of rules over the assets and
// liabilities. Each rule adds at most one insight and the result follows the
// rule order:
//  1. the sign of the net worth,
//  2. the liabilities/assets ratio, when both totals are positive,
//  3. the absence of cash among existing assets,
//  4. a credit card balance above $5,000,
//  5. an invitation to enter data when there is none.
func GenerateInsights(assets []Asset, liabilities []Liability) []Insight {
	t := CalculateNetWorth(assets, liabilities)
	insights := []Insight{}

	if t.NetWorth > 0 {
		insights = append(insights, Insight{Positive, fmt.Sprintf("Your net worth is positive at %s.", FormatCurrency(t.NetWorth))})
	} else if t.NetWorth < 0 {
		insights = append(insights, Insight{Warning, fmt.Sprintf("Your net worth is negative. You owe %s more than you own.", FormatCurrency(math.Abs(t.NetWorth)))})
	}

	if t.TotalLiabilities > 0 && t.TotalAssets > 0 {
		ratio := t.TotalLiabilities / t.TotalAssets
		if ratio > 0.8 {
			insights = append(insights, Insight{Warning, "Your debt-to-asset ratio is high (>80%). Focus on debt reduction."})
		} else if ratio < 0.3 {
			insights = append(insights, Insight{Positive, "Great debt-to-asset ratio (<30%). You have strong financial leverage."})
		}
	}

	cash := sumAssets(assets, func(a Asset) bool { return a.Category == Cash })
	if len(assets) > 0 && cash.IsZero() {
		insights = append(insights, Insight{Warning, "No cash reserves detected. Aim for 3-6 months of expenses in savings."})
	}

	cards := sumLiabilities(liabilities, func(l Liability) bool { return l.Category == CreditCards })
	if cards.GreaterThan(decimal.NewFromInt(creditCardThreshold)) {
		insights = append(insights, Insight{Warning, fmt.Sprintf("Credit card debt of %s is costly. Consider debt avalanche or snowball method.", FormatCurrency(cards.InexactFloat64()))})
	}

	if len(assets) == 0 && len(liabilities) == 0 {
		insights = append(insights, Insight{Info, "Add your assets and liabilities to see personalized insights."})
	}

	return insights
}
