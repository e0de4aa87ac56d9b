package retirement

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Lean and fat FIRE scale the base target.
const (
	leanFIREFactor = 0.7
	fatFIREFactor  = 1.5
)

// fireHorizonMonths caps the years-to-FIRE search at a century.
const fireHorizonMonths = 1200

// FIREInput holds the parameters for a financial-independence target.
type FIREInput struct {
	AnnualExpenses float64

	// WithdrawalRatePercent is the safe withdrawal rate; zero means the
	// conventional 4%.
	WithdrawalRatePercent float64

	CurrentCorpus  float64
	MonthlySavings float64
	AnnualReturn   float64

	// CurrentAge and RetirementAge are only needed for the coast number;
	// both zero skips it.
	CurrentAge    int
	RetirementAge int
}

// FIREResult holds the FIRE targets and the projected time to reach them.
type FIREResult struct {
	// FIRENumber is the corpus whose withdrawals fund the expenses.
	FIRENumber float64 `json:"fire_number"`
	LeanFIRE   float64 `json:"lean_fire"`
	FatFIRE    float64 `json:"fat_fire"`

	// CoastFIRE is the corpus that grows to the FIRE number by the
	// retirement age without further saving.
	CoastFIRE float64 `json:"coast_fire,omitempty"`

	// MonthsToFIRE counts months of saving until the corpus crosses the
	// FIRE number; zero when already there or unreachable.
	MonthsToFIRE int     `json:"months_to_fire"`
	YearsToFIRE  float64 `json:"years_to_fire"`

	// Reachable is false when a century of saving still falls short.
	Reachable bool `json:"reachable"`
}

// FIRE computes the financial-independence targets and iterates the
// monthly savings forward until the corpus crosses the base target.
func FIRE(in FIREInput) (*FIREResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	withdrawalRate := in.WithdrawalRatePercent
	if withdrawalRate == 0 {
		withdrawalRate = constants.DefaultSWRPercent
	}

	fireNumber := in.AnnualExpenses / (withdrawalRate / constants.PercentageMultiplier)

	result := &FIREResult{
		FIRENumber: mathutil.Round(fireNumber),
		LeanFIRE:   mathutil.Round(fireNumber * leanFIREFactor),
		FatFIRE:    mathutil.Round(fireNumber * fatFIREFactor),
	}

	if in.RetirementAge > in.CurrentAge && in.CurrentAge > 0 {
		growth := mathutil.CompoundFactor(in.AnnualReturn/constants.PercentageMultiplier,
			float64(in.RetirementAge-in.CurrentAge))
		result.CoastFIRE = mathutil.Round(fireNumber / growth)
	}

	months, reachable := monthsToTarget(in.CurrentCorpus, in.MonthlySavings, in.AnnualReturn, fireNumber)
	result.MonthsToFIRE = months
	result.YearsToFIRE = mathutil.Round(float64(months) / constants.MonthsPerYear)
	result.Reachable = reachable

	return result, nil
}

func monthsToTarget(corpus, savings, annualRate, target float64) (int, bool) {
	if corpus >= target {
		return 0, true
	}

	rate := mathutil.MonthlyRate(annualRate)
	for month := 1; month <= fireHorizonMonths; month++ {
		corpus = (corpus + savings) * (1.00 + rate)
		if corpus >= target {
			return month, true
		}
	}
	return 0, false
}

func (in FIREInput) validate() error {
	if in.AnnualExpenses <= 0 {
		return fmt.Errorf("annual expenses must be positive, got %.2f", in.AnnualExpenses)
	}
	if in.WithdrawalRatePercent < 0 || in.WithdrawalRatePercent > 20 {
		return fmt.Errorf("withdrawal rate must be between 0 and 20 percent, got %.2f", in.WithdrawalRatePercent)
	}
	if in.CurrentCorpus < 0 {
		return fmt.Errorf("current corpus must not be negative, got %.2f", in.CurrentCorpus)
	}
	if in.MonthlySavings < 0 {
		return fmt.Errorf("monthly savings must not be negative, got %.2f", in.MonthlySavings)
	}
	if in.AnnualReturn < 0 {
		return fmt.Errorf("annual return must not be negative, got %.2f", in.AnnualReturn)
	}
	if in.CurrentAge < 0 || in.RetirementAge < 0 {
		return fmt.Errorf("ages must not be negative")
	}
	if in.RetirementAge > 0 && in.CurrentAge > 0 && in.RetirementAge <= in.CurrentAge {
		return fmt.Errorf("retirement age %d must be beyond the current age %d", in.RetirementAge, in.CurrentAge)
	}
	return nil
}
