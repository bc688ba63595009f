package networth

import (
	"math"
	"regexp"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest monetary value accepted in the aggregate.
const MaxAmount = 999_999_999

var (
	// nonNumericRE matches every character that cannot be part of an amount.
	nonNumericRE = regexp.MustCompile(`[^0-9.-]`)
	// leadingNumberRE matches the longest leading decimal number, like a lenient float parser would.
	leadingNumberRE = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// SanitizeNumber converts user entered text into an amount in [0, MaxAmount].
//
// Every character other than digits, '.' and '-' is dropped, then the longest
// leading number is parsed. Unparsable or non finite input yields 0, and
// negative values collapse to 0: the sign of an amount is carried by it being
// an asset or a liability, never by the value.
//
// Examples:
//
//	SanitizeNumber("$1,234.50")     -> 1234.5
//	SanitizeNumber("abc")           -> 0
//	SanitizeNumber("-50")           -> 0
//	SanitizeNumber("2,000,000,000") -> 999999999
func SanitizeNumber(input string) float64 {
	cleaned := nonNumericRE.ReplaceAllString(input, "")
	match := leadingNumberRE.FindString(cleaned)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		// ParseFloat reports overflow with ±Inf and ErrRange.
		return 0
	}
	return ClampAmount(v)
}

// ClampAmount restricts v to [0, MaxAmount]. NaN becomes 0.
func ClampAmount(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, MaxAmount))
}

// wholeDollars formats amounts in USD without the minor unit.
var wholeDollars = func() *money.Formatter {
	cur := money.GetCurrency(money.USD)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
}()

// FormatCurrency formats a value as whole dollars, e.g. "$1,235" for 1234.5
// and "-$1,000" for -1000. Halves are rounded away from zero.
func FormatCurrency(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "$∞"
	case math.IsInf(value, -1):
		return "-$∞"
	}
	return wholeDollars.Format(decimal.NewFromFloat(value).Round(0).IntPart())
}
