package service

import (
	"strconv"
	"testing"
	"time"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Sunrise   Resort ", "sunrise resort"},
		{"DELUXE\tOcean\nView", "deluxe ocean view"},
		{"", ""},
		{"Люкс  Номер", "люкс номер"},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"plain", "500000", 500000},
		{"spaces", "1 500 000", 1500000},
		{"non-breaking spaces", "1\u00a0500\u00a0000", 1500000},
		{"comma decimal", "12,75", 12},
		{"dot decimal", "99.99", 99},
		{"negative truncates toward zero", "-5,9", -5},
		{"int cell", 250000, 250000},
		{"float cell", 1250.5, 1250},
		{"empty", "", 0},
		{"nil", nil, 0},
		{"text", "n/a", 0},
		{"thousand dots", "1.500.000", 0},
		{"nan", "NaN", 0},
		{"inf", "Inf", 0},
		{"too large", "1e30", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePrice(tt.in); got != tt.want {
				t.Errorf("parsePrice(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePrice_Idempotent(t *testing.T) {
	inputs := []string{"0", "1", "500 000", "12,75", "-3.2", "999999999", "abc", "", "7,000,000"}
	for _, in := range inputs {
		once := parsePrice(in)
		if twice := parsePrice(strconv.Itoa(once)); twice != once {
			t.Errorf("parsePrice not idempotent for %q: %d then %d", in, once, twice)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"15000", 15000},
		{"15500,5", 15500.5},
		{" 16000.25 ", 16000.25},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := parseRate(tt.in); got != tt.want {
			t.Errorf("parseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDayMonthYear(t *testing.T) {
	want := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"01.08.2025", "1.8.2025"} {
		got, ok := parseDayMonthYear(in)
		if !ok || !got.Equal(want) {
			t.Errorf("parseDayMonthYear(%q) = %v, %v", in, got, ok)
		}
	}
	for _, in := range []string{"", "2025-08-01", "32.01.2025", "soon"} {
		if _, ok := parseDayMonthYear(in); ok {
			t.Errorf("parseDayMonthYear(%q) should fail", in)
		}
	}
}

func TestRemarks_With(t *testing.T) {
	var r Remarks
	r = r.With("b", "a", "", "  ", "b")
	r = r.With("c", "a")

	want := []string{"b", "a", "c"}
	if len(r) != len(want) {
		t.Fatalf("got %v, want %v", r, want)
	}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, r[i], want[i])
		}
	}
}

func TestRemarks_WithDoesNotAlias(t *testing.T) {
	base := Remarks{"a"}
	left := base.With("left")
	right := base.With("right")

	if left[1] != "left" || right[1] != "right" {
		t.Errorf("branches share storage: %v %v", left, right)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(1500000); got != "1,500,000" {
		t.Errorf("formatAmount = %q", got)
	}
	if got := formatAmount(950); got != "950" {
		t.Errorf("formatAmount = %q", got)
	}
	if got := formatMoney(140); got != "140.00" {
		t.Errorf("formatMoney = %q", got)
	}
}
