package networth

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	if got, want := NewDate(2025, time.February, 30), NewDate(2025, time.March, 2); got != want {
		t.Errorf("NewDate(2025, 2, 30) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, 13, 1), NewDate(2026, time.January, 1); got != want {
		t.Errorf("NewDate(2025, 13, 1) = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-07-01 ", NewDate(2025, time.July, 1), false},
		{"2025-07-01T23:30:00Z", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_MonthsUntil(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-01-31", "2025-02-01", 1},
		{"2025-01-01", "2025-01-31", 0},
		{"2025-10-19", "2026-10-19", 12},
		{"2025-12-15", "2026-01-01", 1},
		{"2026-03-01", "2025-03-01", -12},
	}
	for _, tt := range tests {
		if got := MustParse(tt.from).MonthsUntil(MustParse(tt.to)); got != tt.want {
			t.Errorf("%s.MonthsUntil(%s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{"canonical", `"2025-07-01"`, NewDate(2025, time.July, 1), false},
		{"lenient", `"2025-7-1"`, NewDate(2025, time.July, 1), false},
		{"not a string", `20250701`, Date{}, true},
		{"not a date", `"yesterday"`, Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.json, err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.json, d, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2025, time.July, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `"2025-07-01"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}
