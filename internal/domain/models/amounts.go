package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.English)

// ParseAmount accepts display-formatted currency input ("$1,000,000",
// "1000000") and returns its numeric value. Empty input parses to zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return d, nil
}

// ParsePercent accepts display-formatted percentage input ("8.5%",
// "8.5") and returns its numeric value. Empty input parses to zero.
func ParsePercent(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if cleaned == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percentage %q: %w", raw, err)
	}
	return d, nil
}

// FormatAmount renders a numeric value as a display currency string
// with thousands separators.
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return displayPrinter.Sprintf("$%d", d.IntPart())
	}
	return displayPrinter.Sprintf("$%.2f", d.InexactFloat64())
}

// FormatPercent renders a numeric value as a display percentage string
// with one decimal place.
func FormatPercent(d decimal.Decimal) string {
	return fmt.Sprintf("%s%%", d.StringFixed(1))
}
