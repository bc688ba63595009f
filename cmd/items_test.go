package cmd

import (
	"testing"

	"github.com/etnz/networth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveItem(t *testing.T) {
	data := networth.FinancialData{
		Assets: []networth.Asset{
			{ID: "a1b2c3", Name: "Savings", Value: 10, Category: networth.Cash},
			{ID: "a1ffff", Name: "House", Value: 10, Category: networth.Property},
		},
		Liabilities: []networth.Liability{
			{ID: "99aa", Name: "Visa", Value: 10, Category: networth.CreditCards},
			{ID: "99", Name: "Loan", Value: 10, Category: networth.OtherLiability},
		},
	}

	tests := []struct {
		ref  string
		id   string
		kind itemKind
	}{
		{"a1b2c3", "a1b2c3", assetItem},
		{"a1b", "a1b2c3", assetItem},
		{" a1f ", "a1ffff", assetItem},
		{"99a", "99aa", liabilityItem},
		{"99", "99", liabilityItem}, // exact match wins over prefixes
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			id, kind, err := resolveItem(data, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.kind, kind)
		})
	}

	for _, ref := range []string{"", "a1", "zz"} {
		_, _, err := resolveItem(data, ref)
		assert.Error(t, err, "ref %q", ref)
	}
}
