// Package format renders amounts and percentages the way the portal displays them.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// Currency returns a whole-rupiah string with Indonesian separators (e.g., "Rp 111.000.000").
// Negative amounts carry a leading sign ("-Rp 25.000.000").
func Currency(amount float64) string {
	formatted := "Rp " + Number(math.Abs(amount))
	if amount < 0 && math.Round(amount) != 0 {
		return "-" + formatted
	}
	return formatted
}

// Number returns a rounded integer with Indonesian thousands separators (e.g., "4.400").
func Number(value float64) string {
	return idPrinter.Sprintf("%d", int64(math.Round(value)))
}

// CompactCurrency abbreviates large amounts for KPI cards (e.g., "Rp 1.2B", "Rp 112M").
func CompactCurrency(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%sRp %.1fB", sign, abs/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%sRp %.0fM", sign, abs/1_000_000)
	default:
		return Currency(amount)
	}
}

// Percent returns a percentage with one decimal (e.g., "85.8%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// OptionalPercent renders a missing percentage with the given placeholder.
func OptionalPercent(value *float64, placeholder string) string {
	if value == nil {
		return placeholder
	}
	return Percent(*value)
}
