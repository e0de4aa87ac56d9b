// Package format renders monetary values for display. Amounts are formatted
// with Indian digit grouping (lakh/crore), e.g. "₹12,34,567.89".
package format

import (
	"fmt"
	"math"
	"strings"
)

const (
	lakh  = 100000.0
	crore = 10000000.0
)

// Currency returns a rupee string with Indian grouping (e.g., "-₹1,23,456.78").
func Currency(amount float64) string {
	formatted := formatPositiveAmount(math.Abs(amount))
	if amount < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// NumericCurrency returns a grouped amount without the rupee symbol
// (e.g., "-1,23,456.78").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveAmount(math.Abs(amount))
}

// Percent renders a percentage with two decimals, e.g. "8.50%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// CompactINR renders large amounts in lakh/crore units, e.g. "₹1.25 Cr",
// "₹3.40 L". Amounts below one lakh fall back to full grouping.
func CompactINR(amount float64) string {
	sign := ""
	abs := math.Abs(amount)
	if amount < 0 {
		sign = "-"
	}
	switch {
	case abs >= crore:
		return fmt.Sprintf("%s₹%.2f Cr", sign, abs/crore)
	case abs >= lakh:
		return fmt.Sprintf("%s₹%.2f L", sign, abs/lakh)
	default:
		return sign + "₹" + formatPositiveAmount(abs)
	}
}

// formatPositiveAmount applies the Indian grouping convention: the last three
// integer digits form one group, every two digits after that form the rest.
func formatPositiveAmount(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		var groups []string
		if len(head)%2 == 1 {
			groups = append(groups, head[:1])
			head = head[1:]
		}
		for i := 0; i < len(head); i += 2 {
			groups = append(groups, head[i:i+2])
		}
		groups = append(groups, tail)
		intPart = strings.Join(groups, ",")
	}

	return intPart + "." + decPart
}
