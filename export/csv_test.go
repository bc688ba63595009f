package export

import (
	"errors"
	"testing"

	"github.com/etnz/networth"
	"github.com/stretchr/testify/assert"
)

func TestWriteCSV(t *testing.T) {
	data := networth.NewFinancialData()
	data.Assets = []networth.Asset{
		{Name: "Savings, joint", Value: 1234.5, Category: networth.Cash},
		{Name: "House", Value: 350000, Category: networth.Property},
	}
	data.Liabilities = []networth.Liability{
		{Name: "Mortgage", Value: 200000, Category: networth.Mortgage},
	}

	want := "Category,Name,Value\n" +
		"Asset,Savings joint,1234.5\n" +
		"Asset,House,350000\n" +
		"Liability,Mortgage,200000\n"
	assert.Equal(t, want, CSV(data))

	data.History = []networth.NetWorthSnapshot{
		{Date: networth.NewDate(2025, 9, 1), Assets: 351234.5, Liabilities: 200000, NetWorth: 151234.5},
		{Date: networth.NewDate(2025, 8, 1), Assets: 1000, Liabilities: 3000, NetWorth: -2000},
	}
	want += "\n" +
		"Date,Total Assets,Total Liabilities,Net Worth\n" +
		"2025-09-01,351234.5,200000,151234.5\n" +
		"2025-08-01,1000,3000,-2000\n"
	assert.Equal(t, want, CSV(data))
}

func TestWriteCSV_Empty(t *testing.T) {
	assert.Equal(t, "Category,Name,Value\n", CSV(networth.FinancialData{}))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriteError(t *testing.T) {
	err := WriteCSV(brokenWriter{}, nil, nil, nil)
	assert.ErrorContains(t, err, "disk full")
}
