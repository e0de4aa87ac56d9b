// Package breakeven finds the sales volume where revenue covers cost.
package breakeven

import (
	"errors"
	"fmt"
	"math"

	"github.com/paisawise/paisawise/pkg/mathutil"
)

// ErrNoBreakEven marks inputs where every sale loses money, so no volume
// ever breaks even.
var ErrNoBreakEven = errors.New("price per unit does not exceed the variable cost per unit")

// Input holds the parameters for a break-even analysis.
type Input struct {
	FixedCosts          float64
	PricePerUnit        float64
	VariableCostPerUnit float64

	// TargetProfit optionally asks for the volume that earns this much
	// beyond covering cost.
	TargetProfit float64
}

// Result holds the outcome of a break-even analysis.
type Result struct {
	// ContributionMargin is what each unit contributes toward fixed
	// costs after its own variable cost.
	ContributionMargin             float64 `json:"contribution_margin"`
	ContributionMarginRatioPercent float64 `json:"contribution_margin_ratio_percent"`

	// BreakEvenUnits is rounded up; partial units cannot be sold.
	BreakEvenUnits   int     `json:"break_even_units"`
	BreakEvenRevenue float64 `json:"break_even_revenue"`

	// Units and revenue needed for the target profit; zero without one.
	TargetProfitUnits   int     `json:"target_profit_units,omitempty"`
	TargetProfitRevenue float64 `json:"target_profit_revenue,omitempty"`
}

// Compute derives the break-even point from the unit economics.
func Compute(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	margin := in.PricePerUnit - in.VariableCostPerUnit
	if margin <= 0 {
		return nil, fmt.Errorf("%w: price %.2f, variable cost %.2f",
			ErrNoBreakEven, in.PricePerUnit, in.VariableCostPerUnit)
	}

	units := int(math.Ceil(in.FixedCosts / margin))

	result := &Result{
		ContributionMargin:             mathutil.Round(margin),
		ContributionMarginRatioPercent: mathutil.Round(mathutil.CalculatePercentage(margin, in.PricePerUnit)),
		BreakEvenUnits:                 units,
		BreakEvenRevenue:               mathutil.Round(float64(units) * in.PricePerUnit),
	}

	if in.TargetProfit > 0 {
		targetUnits := int(math.Ceil((in.FixedCosts + in.TargetProfit) / margin))
		result.TargetProfitUnits = targetUnits
		result.TargetProfitRevenue = mathutil.Round(float64(targetUnits) * in.PricePerUnit)
	}

	return result, nil
}

func (in Input) validate() error {
	if in.FixedCosts < 0 {
		return fmt.Errorf("fixed costs must not be negative, got %.2f", in.FixedCosts)
	}
	if in.PricePerUnit <= 0 {
		return fmt.Errorf("price per unit must be positive, got %.2f", in.PricePerUnit)
	}
	if in.VariableCostPerUnit < 0 {
		return fmt.Errorf("variable cost per unit must not be negative, got %.2f", in.VariableCostPerUnit)
	}
	if in.TargetProfit < 0 {
		return fmt.Errorf("target profit must not be negative, got %.2f", in.TargetProfit)
	}
	return nil
}
