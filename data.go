package networth

import (
	"encoding/json"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the maximum number of characters kept in an asset or liability name.
const MaxNameLength = 100

// Asset is something the user owns.
type Asset struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Value    float64       `json:"value"`
	Category AssetCategory `json:"category"`
}

// Liability is something the user owes.
type Liability struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Value    float64           `json:"value"`
	Category LiabilityCategory `json:"category"`
}

// FinancialData is the aggregate persisted as a whole: assets, liabilities,
// the snapshot history and the optional goal.
type FinancialData struct {
	Assets      []Asset            `json:"assets"`
	Liabilities []Liability        `json:"liabilities"`
	History     []NetWorthSnapshot `json:"history"`
	Goal        *Goal              `json:"goal"`
}

// NewFinancialData returns the empty default aggregate.
func NewFinancialData() FinancialData {
	return FinancialData{
		Assets:      []Asset{},
		Liabilities: []Liability{},
		History:     []NetWorthSnapshot{},
	}
}

// Clone returns a deep copy of the aggregate, with absent sequences replaced by empty ones.
func (f FinancialData) Clone() FinancialData {
	c := FinancialData{
		Assets:      slices.Clone(f.Assets),
		Liabilities: slices.Clone(f.Liabilities),
		History:     slices.Clone(f.History),
	}
	if c.Assets == nil {
		c.Assets = []Asset{}
	}
	if c.Liabilities == nil {
		c.Liabilities = []Liability{}
	}
	if c.History == nil {
		c.History = []NetWorthSnapshot{}
	}
	if f.Goal != nil {
		g := *f.Goal
		c.Goal = &g
	}
	return c
}

// IsEmpty reports whether there are neither assets nor liabilities.
func (f FinancialData) IsEmpty() bool {
	return len(f.Assets) == 0 && len(f.Liabilities) == 0
}

// Totals computes the net worth of the current assets and liabilities.
func (f FinancialData) Totals() Totals {
	return CalculateNetWorth(f.Assets, f.Liabilities)
}

// MarshalJSON always writes the three sequences, as empty arrays when absent.
func (f FinancialData) MarshalJSON() ([]byte, error) {
	type plain FinancialData // drops the methods to avoid recursion
	return json.Marshal(plain(f.Clone()))
}

// CleanName trims a user entered name and caps it to MaxNameLength characters.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
}
