package util

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewID returns a prefixed unique identifier, e.g. "order_0b9e...".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// NormalizeKey trims and lower-cases s for case-insensitive uniqueness checks.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DigitsOnly strips every non-digit rune, e.g. "(11) 98765-4321" -> "11987654321".
func DigitsOnly(s string) string {
	var digits strings.Builder
	digits.Grow(len(s))

	for _, r := range s {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

// FormatBRL formats an amount as Brazilian reais, e.g. "R$ 1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for idx, r := range intPart {
		if idx > 0 && (len(intPart)-idx)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
