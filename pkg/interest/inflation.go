package interest

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// InflationInput holds the parameters for an inflation impact calculation.
type InflationInput struct {
	Amount        float64
	InflationRate float64
	Years         float64
}

// InflationResult shows both directions of the same erosion: what today's
// amount will cost later, and what it will then be worth in today's terms.
type InflationResult struct {
	FutureCost      float64 `json:"future_cost"`
	PurchasingPower float64 `json:"purchasing_power"`
}

// Inflation compounds the inflation rate over the period.
func Inflation(in InflationInput) (*InflationResult, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %.2f", in.Amount)
	}
	if in.InflationRate < 0 {
		return nil, fmt.Errorf("inflation rate must not be negative, got %.2f", in.InflationRate)
	}
	if in.Years <= 0 || in.Years > constants.MaxTenureYears {
		return nil, fmt.Errorf("duration must be between 0 and %d years, got %.2f",
			constants.MaxTenureYears, in.Years)
	}

	factor := mathutil.CompoundFactor(in.InflationRate/constants.PercentageMultiplier, in.Years)
	return &InflationResult{
		FutureCost:      mathutil.Round(in.Amount * factor),
		PurchasingPower: mathutil.Round(in.Amount / factor),
	}, nil
}
