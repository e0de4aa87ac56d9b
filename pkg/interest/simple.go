package interest

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// SimpleInput holds the parameters for a simple interest calculation.
type SimpleInput struct {
	Principal  float64
	AnnualRate float64
	Years      float64
}

// SimpleResult holds the outcome of a simple interest calculation.
type SimpleResult struct {
	Interest float64 `json:"interest"`
	Amount   float64 `json:"amount"`
}

// Simple computes non-compounding interest on a principal.
func Simple(in SimpleInput) (*SimpleResult, error) {
	if in.Principal <= 0 {
		return nil, fmt.Errorf("principal must be positive, got %.2f", in.Principal)
	}
	if in.AnnualRate < 0 {
		return nil, fmt.Errorf("annual rate must not be negative, got %.2f", in.AnnualRate)
	}
	if in.Years <= 0 || in.Years > constants.MaxTenureYears {
		return nil, fmt.Errorf("duration must be between 0 and %d years, got %.2f",
			constants.MaxTenureYears, in.Years)
	}

	interest := in.Principal * in.AnnualRate / constants.PercentageMultiplier * in.Years
	return &SimpleResult{
		Interest: mathutil.Round(interest),
		Amount:   mathutil.Round(in.Principal + interest),
	}, nil
}
