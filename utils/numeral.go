package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ShiftDecimal moves the decimal point of v by exp places using its decimal
// representation, so ShiftDecimal(0.995, 2) is exactly 99.5.
func ShiftDecimal(v float64, exp int) float64 {
	if exp == 0 || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	mantissa, e, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	n, err := strconv.Atoi(e)
	if err != nil {
		return v * math.Pow10(exp)
	}
	res, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(n+exp), 64)
	if err != nil {
		return v * math.Pow10(exp)
	}
	return res
}

// Round rounds half up to the given number of decimal places.
func Round(v float64, precision int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return ShiftDecimal(math.Floor(ShiftDecimal(v, precision)+0.5), -precision)
}

// FormatNumber applies a display mask like "0.0" or "0.0%".
// Percent masks scale the value by 100.
func FormatNumber(v float64, mask string) string {
	percent := strings.HasSuffix(mask, "%")
	m := strings.TrimSuffix(mask, "%")
	decimals := 0
	if i := strings.Index(m, "."); i >= 0 {
		decimals = len(m) - i - 1
	}
	if percent {
		v = ShiftDecimal(v, 2)
	}
	out := strconv.FormatFloat(Round(v, decimals), 'f', decimals, 64)
	if percent {
		out += "%"
	}
	return out
}

// ParseNumber reads back a value produced by FormatNumber or a day count like "1.5d".
func ParseNumber(s string) (float64, error) {
	str := strings.TrimSpace(s)
	percent := strings.HasSuffix(str, "%")
	str = strings.TrimSuffix(str, "%")
	str = strings.TrimSuffix(str, "d")
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse number '%s': %w", s, err)
	}
	if percent {
		v = ShiftDecimal(v, -2)
	}
	return v, nil
}

// FormatDays renders a day count as "1d" for exactly one day and "<n>d" otherwise.
func FormatDays(days float64) string {
	if days == 1 {
		return "1d"
	}
	return FormatNumber(days, "0.0") + "d"
}

// IsValidNumberMask accepts "0", "0.0", "0.00" and so on, optionally followed by "%".
func IsValidNumberMask(mask string) bool {
	m := strings.TrimSuffix(mask, "%")
	whole, frac, hasDot := strings.Cut(m, ".")
	if whole != "0" {
		return false
	}
	if hasDot && (frac == "" || strings.Trim(frac, "0") != "") {
		return false
	}
	return true
}
