// Package export writes the financial data in formats meant for other tools.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/networth"
)

// CSVFileName is the suggested name of the CSV export.
const CSVFileName = "net-worth-export.csv"

// WriteCSV writes a two section comma separated export.
//
// The first section lists every asset then every liability under the header
// "Category,Name,Value". When history is not empty, a blank line follows and
// the second section lists one snapshot per row under
// "Date,Total Assets,Total Liabilities,Net Worth".
//
// Names have their commas removed. No other quoting is applied.
func WriteCSV(w io.Writer, assets []networth.Asset, liabilities []networth.Liability, history []networth.NetWorthSnapshot) error {
	var b strings.Builder
	b.WriteString("Category,Name,Value\n")
	for _, a := range assets {
		fmt.Fprintf(&b, "Asset,%s,%s\n", stripCommas(a.Name), number(a.Value))
	}
	for _, l := range liabilities {
		fmt.Fprintf(&b, "Liability,%s,%s\n", stripCommas(l.Name), number(l.Value))
	}

	if len(history) > 0 {
		b.WriteString("\nDate,Total Assets,Total Liabilities,Net Worth\n")
		for _, h := range history {
			fmt.Fprintf(&b, "%s,%s,%s,%s\n", h.Date, number(h.Assets), number(h.Liabilities), number(h.NetWorth))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}

// CSV returns the export of data as a string.
func CSV(data networth.FinancialData) string {
	var b strings.Builder
	_ = WriteCSV(&b, data.Assets, data.Liabilities, data.History) // a Builder never fails
	return b.String()
}

func stripCommas(s string) string { return strings.ReplaceAll(s, ",", "") }

// number writes v with the shortest representation, without exponent.
func number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
