package utils

import (
	"math"
	"testing"
	"time"
)

func TestParseNumberLocalized(t *testing.T) {
	cases := []struct {
		name     string
		raw      interface{}
		fallback float64
		want     float64
	}{
		{"plain float", 12.5, 0, 12.5},
		{"plain int", 42, 0, 42},
		{"nil uses fallback", nil, 7, 7},
		{"french price with nbsp and euro", "1 234,50 €", 0, 1234.5},
		{"french price with space", "1 234,50", 0, 1234.5},
		{"comma decimal", "89,90", 0, 89.9},
		{"dot decimal", "89.90", 0, 89.9},
		{"both separators comma last", "1.234,56", 0, 1234.56},
		{"both separators dot last", "1,234.56", 0, 1234.56},
		{"multi dot thousands", "3.000.000", 0, 3000000},
		{"multi dot trailing decimal", "1.234.56", 0, 1234.56},
		{"parenthesized negative", "(12.50)", 0, -12.5},
		{"currency dollar", "$99", 0, 99},
		{"currency pound", "£45.20", 0, 45.2},
		{"percent sign", "73%", 0, 73},
		{"garbage uses fallback", "n/a", 0, 0},
		{"garbage custom fallback", "abc", 5, 5},
		{"empty string", "", 3, 3},
		{"whitespace only", "   ", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseNumber(tc.raw, tc.fallback)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("ParseNumber(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseNumberNeverPanicsOrErrors(t *testing.T) {
	// silent degradation is the contract: any garbage maps to fallback
	for _, raw := range []interface{}{"€€€", "--", "1,2,3,4", struct{}{}, []int{1}} {
		got := ParseNumber(raw, 0)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("ParseNumber(%v) produced non-finite %v", raw, got)
		}
	}
}

func TestParseDateVariants(t *testing.T) {
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2025-06-15", "15-06-2025", "15/06/2025"} {
		got := ParseDate(raw)
		if got == nil {
			t.Fatalf("ParseDate(%q) = nil", raw)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseDateFailureReturnsNil(t *testing.T) {
	for _, raw := range []string{"", "not a date", "99/99/9999"} {
		if got := ParseDate(raw); got != nil {
			t.Fatalf("ParseDate(%q) = %v, want nil", raw, got)
		}
	}
}
