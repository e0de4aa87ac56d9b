// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/paisawise/paisawise/pkg/scenario"
)

// FindOutcome finds a calculation outcome by name in the results slice.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(outcomes []scenario.Outcome, name string) *scenario.Outcome {
	for i := range outcomes {
		if outcomes[i].Name == name {
			return &outcomes[i]
		}
	}
	return nil
}

// WithinRupee reports whether two amounts agree to within one rupee,
// which absorbs rounding differences across calculation paths.
func WithinRupee(a, b float64) bool {
	return math.Abs(a-b) <= 1.0
}
