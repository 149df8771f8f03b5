package utils

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      float64
	}{
		{4.45, 1, 4.5},
		{4.44, 1, 4.4},
		{1.005, 2, 1.01},
		{0.9985, 3, 0.999},
		{0.0015, 3, 0.002},
		{1.05, 1, 1.1},
		{5, 1, 5},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.precision); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestShiftDecimal(t *testing.T) {
	if got := ShiftDecimal(0.995, 2); got != 99.5 {
		t.Errorf("ShiftDecimal(0.995, 2) = %v, want 99.5", got)
	}
	if got := ShiftDecimal(99.5, -2); got != 0.995 {
		t.Errorf("ShiftDecimal(99.5, -2) = %v, want 0.995", got)
	}
	if got := ShiftDecimal(0.00001, 3); got != 0.01 {
		t.Errorf("ShiftDecimal(0.00001, 3) = %v, want 0.01", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		mask string
		want string
	}{
		{4.9, "0.0", "4.9"},
		{5, "0.0", "5.0"},
		{0.999, "0.0%", "99.9%"},
		{0.995, "0.0%", "99.5%"},
		{1, "0.0%", "100.0%"},
		{0.001, "0.0%", "0.1%"},
		{0, "0.0%", "0.0%"},
		{0.1234, "0%", "12%"},
		{2.345, "0.00", "2.35"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.mask); got != tt.want {
			t.Errorf("FormatNumber(%v, %q) = %q, want %q", tt.v, tt.mask, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"99.8%", 0.998},
		{"4.5", 4.5},
		{"1.5d", 1.5},
		{" 100% ", 1},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if err != nil {
			t.Fatalf("ParseNumber(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseNumber("n/a"); err == nil {
		t.Errorf("expected error for non-numeric input")
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1d" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(1.5); got != "1.5d" {
		t.Errorf("FormatDays(1.5) = %q", got)
	}
	if got := FormatDays(0.9); got != "0.9d" {
		t.Errorf("FormatDays(0.9) = %q", got)
	}
}

func TestIsValidNumberMask(t *testing.T) {
	valid := []string{"0", "0.0", "0.00%", "0%"}
	for _, m := range valid {
		if !IsValidNumberMask(m) {
			t.Errorf("IsValidNumberMask(%q) = false", m)
		}
	}
	invalid := []string{"", "0.", "00.0", "0.1", "#.#", "0.0%%"}
	for _, m := range invalid {
		if IsValidNumberMask(m) {
			t.Errorf("IsValidNumberMask(%q) = true", m)
		}
	}
}
