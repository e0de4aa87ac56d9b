// Package deposit calculates fixed and recurring deposit maturities using
// Indian banking conventions.
package deposit

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Compounding names a compounding frequency for cumulative deposits.
type Compounding string

// Supported compounding frequencies.
const (
	CompoundMonthly    Compounding = "monthly"
	CompoundQuarterly  Compounding = "quarterly"
	CompoundHalfYearly Compounding = "half-yearly"
	CompoundYearly     Compounding = "yearly"
)

func (c Compounding) periodsPerYear() (int, error) {
	switch c {
	case CompoundMonthly:
		return 12, nil
	case CompoundQuarterly:
		return 4, nil
	case CompoundHalfYearly:
		return 2, nil
	case CompoundYearly:
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown compounding frequency %q", string(c))
	}
}

// FDInput holds the parameters for a fixed deposit.
type FDInput struct {
	Principal  float64
	AnnualRate float64
	TermMonths int

	// Compounding applies to cumulative deposits; empty means quarterly,
	// the common bank convention.
	Compounding Compounding

	// Payout selects a non-cumulative deposit: interest is paid out as
	// simple interest instead of compounding.
	Payout bool
}

// FDResult holds the outcome of a fixed deposit calculation. For payout
// deposits MaturityValue is the principal plus the interest received over
// the term.
type FDResult struct {
	MaturityValue float64 `json:"maturity_value"`
	Interest      float64 `json:"interest"`

	// EffectiveYieldPercent is the annual yield after compounding; for
	// payout deposits it equals the nominal rate.
	EffectiveYieldPercent float64 `json:"effective_yield_percent"`
}

// FixedDeposit calculates the maturity value of a fixed deposit.
func FixedDeposit(in FDInput) (*FDResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	years := float64(in.TermMonths) / constants.MonthsPerYear

	if in.Payout {
		interest := in.Principal * in.AnnualRate / constants.PercentageMultiplier * years
		return &FDResult{
			MaturityValue:         mathutil.Round(in.Principal + interest),
			Interest:              mathutil.Round(interest),
			EffectiveYieldPercent: mathutil.Round(in.AnnualRate),
		}, nil
	}

	compounding := in.Compounding
	if compounding == "" {
		compounding = CompoundQuarterly
	}
	periods, err := compounding.periodsPerYear()
	if err != nil {
		return nil, err
	}

	rate := mathutil.PeriodicRate(in.AnnualRate, periods)
	maturity := in.Principal * mathutil.CompoundFactor(rate, float64(periods)*years)
	yield := (mathutil.CompoundFactor(rate, float64(periods)) - 1.00) * constants.PercentageMultiplier

	return &FDResult{
		MaturityValue:         mathutil.Round(maturity),
		Interest:              mathutil.Round(maturity - in.Principal),
		EffectiveYieldPercent: mathutil.Round(yield),
	}, nil
}

func (in FDInput) validate() error {
	if in.Principal <= 0 {
		return fmt.Errorf("principal must be positive, got %.2f", in.Principal)
	}
	if in.AnnualRate < 0 {
		return fmt.Errorf("annual rate must not be negative, got %.2f", in.AnnualRate)
	}
	if in.TermMonths <= 0 {
		return fmt.Errorf("term must be at least one month, got %d", in.TermMonths)
	}
	if in.TermMonths > constants.MaxTenureMonths {
		return fmt.Errorf("term of %d months exceeds the maximum of %d", in.TermMonths, constants.MaxTenureMonths)
	}
	return nil
}
