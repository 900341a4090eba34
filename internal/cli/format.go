// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a currency amount with two decimals and comma
// grouping, e.g. 25000 -> "$25,000.00". Values go through decimal so the
// milestone table never shows float artifacts like 2249.9999999999995.
func FormatMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)

	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	out := "$" + groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatMonths formats a fractional month count, e.g. 33.333 -> "33.33 months".
func FormatMonths(v float64) string {
	return fmt.Sprintf("%.2f months", v)
}

// FormatPercent formats a percentage that is already scaled to 0-100.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
