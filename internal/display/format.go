package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCashout renders a cashout amount as currency with a human scale
// suffix: two decimals for millions, one for thousands, none below that
func FormatCashout(amount int) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%s (%.2fM)", groupDigits(amount), float64(amount)/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%s (%.1fK)", groupDigits(amount), float64(amount)/1_000)
	default:
		return "$" + groupDigits(amount)
	}
}

// FormatChange renders a ranked position change as a directional indicator
func FormatChange(change int) string {
	switch {
	case change > 0:
		return "↑" + strconv.Itoa(change)
	case change < 0:
		return "↓" + strconv.Itoa(-change)
	default:
		return "→0"
	}
}

// FormatNumber renders an optional value with thousands separators, "N/A"
// when absent
func FormatNumber(value *int) string {
	if value == nil {
		return "N/A"
	}
	return groupDigits(*value)
}

// FormatTimestamp converts an RFC 3339 timestamp to a compact display
// form, falling back to the raw string when it does not parse
func FormatTimestamp(iso string) string {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return parsed.Format("2006/01/02 15:04:05")
}

// Signed renders a value with an explicit leading sign and separators
func Signed(value int) string {
	if value >= 0 {
		return "+" + groupDigits(value)
	}
	return groupDigits(value)
}

// SignedCurrency renders a currency delta with an explicit leading sign
func SignedCurrency(value int) string {
	if value >= 0 {
		return "+$" + groupDigits(value)
	}
	return "-$" + groupDigits(-value)
}

// groupDigits inserts thousands separators into an integer
func groupDigits(value int) string {
	digits := strconv.Itoa(value)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}
