package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

//
// ===========================================================
//  TOLERANT VALUE PARSING
// ===========================================================
//
// Upstream rows are operator-maintained and inconsistently formatted
// (comma decimals, thousands separators, currency symbols, French and
// ISO date variants). These helpers never fail loudly: a value that
// cannot be parsed degrades to the caller's fallback.
//

// ParseNumber returns a best-effort finite number from a loosely-typed
// source field. Unparseable input yields fallback, never an error.
func ParseNumber(raw interface{}, fallback float64) float64 {
	switch v := raw.(type) {
	case nil:
		return fallback
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return v
	case float32:
		return ParseNumber(float64(v), fallback)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseNumericString(v, fallback)
	default:
		return fallback
	}
}

func parseNumericString(raw string, fallback float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}

	// non-breaking and narrow no-break spaces show up as thousands
	// separators in exported French data
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	for _, sym := range []string{"€", "$", "£", "%"} {
		s = strings.ReplaceAll(s, sym, "")
	}

	// accountant-style negatives: (123.45) -> -123.45
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	s = normalizeSeparators(s)

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	if negative {
		n = -n
	}
	return n
}

// normalizeSeparators resolves the comma-vs-dot ambiguity: when both are
// present the later symbol is the decimal separator; a lone comma is a
// decimal; repeated dots are thousands grouping.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot >= 0 && strings.Count(s, ".") > 1:
		if isThousandsGrouped(s) {
			s = strings.ReplaceAll(s, ".", "")
		} else {
			s = strings.Replace(s, ".", "", strings.Count(s, ".")-1)
		}
	}
	return s
}

// isThousandsGrouped reports whether every dot-delimited group after the
// first has exactly three digits, e.g. "3.000.000".
func isThousandsGrouped(s string) bool {
	parts := strings.Split(s, ".")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) != 3 {
			return false
		}
		for _, r := range parts[i] {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate accepts ISO (yyyy-MM-dd), dash or slash French dates
// (dd-MM-yyyy, dd/MM/yyyy) and common timestamp layouts. Returns nil on
// total failure, never an error.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			return &d
		}
	}
	return nil
}

// DayKey collapses a timestamp to its calendar-day key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Clamp bounds v into [low, high].
func Clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
