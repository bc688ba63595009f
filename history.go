package networth

// NetWorthSnapshot freezes the totals on a given day.
type NetWorthSnapshot struct {
	Date        Date    `json:"date"`
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	NetWorth    float64 `json:"netWorth"`
}

// NewSnapshot freezes totals on the given day.
func NewSnapshot(on Date, t Totals) NetWorthSnapshot {
	return NetWorthSnapshot{
		Date:        on,
		Assets:      t.TotalAssets,
		Liabilities: t.TotalLiabilities,
		NetWorth:    t.NetWorth,
	}
}

// SaveSnapshot returns a new history with s recorded. A snapshot already
// recorded on the same day is replaced in place, otherwise s is appended.
// The history is never sorted: out of order saves stay in entry order.
func SaveSnapshot(history []NetWorthSnapshot, s NetWorthSnapshot) []NetWorthSnapshot {
	res := make([]NetWorthSnapshot, len(history), len(history)+1)
	copy(res, history)
	for i, h := range res {
		if h.Date == s.Date {
			res[i] = s
			return res
		}
	}
	return append(res, s)
}

// HasTrend reports whether the history holds enough snapshots to draw a trend.
func HasTrend(history []NetWorthSnapshot) bool {
	return len(history) >= 2
}
