package networth

import "testing"

func TestHealthLevelOf(t *testing.T) {
	tests := []struct {
		assets, liabilities float64
		want                HealthLevel
	}{
		{0, 0, Fair},
		{100, 0, Excellent}, // no debt
		{400, 500, Poor},
		{5000, 6000, Poor},
		{500, 1000, Poor}, // 0.5 is not below 0.5
		{1000, 3000, Critical},
		{0, 100, Critical},
		{2000, 1000, Fair}, // 2 is not above 2
		{3000, 1000, Good},
		{5000, 1000, Good}, // 5 is not above 5
		{6000, 1000, Excellent},
		{1000, 1000, Fair},
	}
	for _, tt := range tests {
		nw := tt.assets - tt.liabilities
		if got := HealthLevelOf(nw, tt.assets, tt.liabilities); got != tt.want {
			t.Errorf("HealthLevelOf(%v, %v, %v) = %v, want %v", nw, tt.assets, tt.liabilities, got, tt.want)
		}
	}
}

func TestHealthPercent(t *testing.T) {
	tests := []struct {
		assets, liabilities float64
		want                Percent
	}{
		{0, 0, 50},
		{100, 0, 100},
		{0, 100, 0},
		{1000, 2000, 10},
		{2000, 1000, 40},
		{5000, 1000, 100},
		{9000, 1000, 100},
	}
	for _, tt := range tests {
		got := HealthPercent(tt.assets-tt.liabilities, tt.assets, tt.liabilities)
		if !got.Equal(tt.want) {
			t.Errorf("HealthPercent(%v, %v) = %v, want %v", tt.assets, tt.liabilities, got, tt.want)
		}
	}
}

func TestHealthLevel_Display(t *testing.T) {
	if got := Critical.Color(); got != "#ef4444" {
		t.Errorf("Critical.Color() = %q", got)
	}
	if got := Excellent.Label(); got != "Excellent" {
		t.Errorf("Excellent.Label() = %q", got)
	}
}
