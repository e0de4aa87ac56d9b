package interest

import (
	"fmt"
	"math"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// CAGRInput holds the parameters for a compound annual growth rate.
type CAGRInput struct {
	BeginValue float64
	EndValue   float64
	Years      float64
}

// CAGRResult holds the outcome of a CAGR calculation.
type CAGRResult struct {
	// CAGRPercent is negative when the investment lost value.
	CAGRPercent float64 `json:"cagr_percent"`

	// GrowthMultiple is the end value over the begin value.
	GrowthMultiple float64 `json:"growth_multiple"`
}

// CAGR computes the constant annual rate that turns the begin value into
// the end value over the period.
func CAGR(in CAGRInput) (*CAGRResult, error) {
	if in.BeginValue <= 0 {
		return nil, fmt.Errorf("begin value must be positive, got %.2f", in.BeginValue)
	}
	if in.EndValue <= 0 {
		return nil, fmt.Errorf("end value must be positive, got %.2f", in.EndValue)
	}
	if in.Years <= 0 || in.Years > constants.MaxTenureYears {
		return nil, fmt.Errorf("duration must be between 0 and %d years, got %.2f",
			constants.MaxTenureYears, in.Years)
	}

	multiple := in.EndValue / in.BeginValue
	rate := (math.Pow(multiple, 1.0/in.Years) - 1.00) * constants.PercentageMultiplier

	return &CAGRResult{
		CAGRPercent:    mathutil.Round(rate),
		GrowthMultiple: mathutil.RoundTo(multiple, 4),
	}, nil
}
