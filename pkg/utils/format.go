// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency formats a dollar amount with thousands separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	// Format with 2 decimal places
	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")

	result := "$" + formatThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// formatThousands groups an integer string in threes from the right.
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	head := n % 3
	var b strings.Builder
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPnL formats P&L with sign. Infinite values render as "Unlimited".
func FormatPnL(pnl float64) string {
	switch {
	case math.IsInf(pnl, 1):
		return "Unlimited"
	case math.IsInf(pnl, -1):
		return "-Unlimited"
	}
	formatted := FormatCurrency(pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}


// FormatPrice formats an underlying or strike price.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
