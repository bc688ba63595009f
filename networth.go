package networth

import (
	"math"

	"github.com/shopspring/decimal"
)

// Totals holds the three headline figures of the aggregate.
type Totals struct {
	TotalAssets      float64
	TotalLiabilities float64
	NetWorth         float64
}

// CalculateNetWorth sums asset and liability values. The sums are exact, so
// the result does not depend on the order of the items.
func CalculateNetWorth(assets []Asset, liabilities []Liability) Totals {
	a := sumAssets(assets, func(Asset) bool { return true })
	l := sumLiabilities(liabilities, func(Liability) bool { return true })
	return Totals{
		TotalAssets:      a.InexactFloat64(),
		TotalLiabilities: l.InexactFloat64(),
		NetWorth:         a.Sub(l).InexactFloat64(),
	}
}

// sumAssets returns the exact sum of the values of the assets matching keep.
func sumAssets(assets []Asset, keep func(Asset) bool) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		if keep(a) {
			total = total.Add(amount(a.Value))
		}
	}
	return total
}

// sumLiabilities returns the exact sum of the values of the liabilities matching keep.
func sumLiabilities(liabilities []Liability, keep func(Liability) bool) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		if keep(l) {
			total = total.Add(amount(l.Value))
		}
	}
	return total
}

// amount converts a value to a decimal. Non finite values count as 0.
func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
