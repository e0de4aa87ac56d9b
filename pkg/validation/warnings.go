package validation

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
)

// WarnOptimisticRate returns a warning when a return-rate input exceeds the
// optimistic threshold. Empty string means no warning.
func WarnOptimisticRate(label string, ratePercent float64) string {
	if ratePercent > constants.OptimisticRatePercent {
		return fmt.Sprintf("%s of %.2f%% is above %.0f%% - long-run returns this high are rarely sustained",
			label, ratePercent, constants.OptimisticRatePercent)
	}
	return ""
}

// WarnLongTenure returns a warning for unusually long loan tenures.
func WarnLongTenure(label string, months int) string {
	if months > constants.LongTenureWarningMonths {
		return fmt.Sprintf("%s of %d months exceeds %d years - total interest will dominate the payment",
			label, months, constants.LongTenureWarningMonths/constants.MonthsPerYear)
	}
	return ""
}

// AppendWarning appends msg to warnings when msg is non-empty.
func AppendWarning(warnings []string, msg string) []string {
	if msg != "" {
		return append(warnings, msg)
	}
	return warnings
}
