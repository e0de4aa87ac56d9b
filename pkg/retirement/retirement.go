// Package retirement plans retirement corpus targets and FIRE milestones.
package retirement

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Input holds the parameters for a retirement corpus plan.
type Input struct {
	CurrentAge     int
	RetirementAge  int
	LifeExpectancy int

	// MonthlyExpense is today's monthly household expense.
	MonthlyExpense float64

	// InflationRate grows the expense until and through retirement.
	InflationRate float64

	// PreReturn is the expected annual return while accumulating.
	PreReturn float64

	// PostReturn is the expected annual return on the retirement corpus.
	PostReturn float64

	// ExistingCorpus is already-invested money that keeps compounding at
	// the pre-retirement return.
	ExistingCorpus float64
}

// Result holds the complete outcome of a retirement plan.
type Result struct {
	YearsToRetirement int `json:"years_to_retirement"`
	RetirementYears   int `json:"retirement_years"`

	// MonthlyExpenseAtRetirement is today's expense inflated to the
	// retirement year.
	MonthlyExpenseAtRetirement float64 `json:"monthly_expense_at_retirement"`

	// CorpusRequired funds the inflating expenses through retirement.
	CorpusRequired float64 `json:"corpus_required"`

	// ExistingCorpusValue is the existing corpus grown to retirement.
	ExistingCorpusValue float64 `json:"existing_corpus_value"`

	CorpusShortfall    float64 `json:"corpus_shortfall"`
	MonthlySIPRequired float64 `json:"monthly_sip_required"`

	Warnings []string `json:"warnings,omitempty"`
}

// Plan computes the corpus needed at retirement and the monthly investment
// that closes the gap. The corpus is the present value at retirement of
// expenses growing with inflation while the remaining corpus earns the
// post-retirement return; a real return of zero degrades to a simple
// expenses-times-years fund.
func Plan(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	yearsToRetire := in.RetirementAge - in.CurrentAge
	retirementYears := in.LifeExpectancy - in.RetirementAge

	expenseAtRetirement := in.MonthlyExpense *
		mathutil.CompoundFactor(in.InflationRate/constants.PercentageMultiplier, float64(yearsToRetire))
	annualExpense := expenseAtRetirement * constants.MonthsPerYear

	corpus := annualExpense * drawdownFactor(in.PostReturn, in.InflationRate, retirementYears)

	existingValue := in.ExistingCorpus *
		mathutil.CompoundFactor(in.PreReturn/constants.PercentageMultiplier, float64(yearsToRetire))
	shortfall := mathutil.Max(corpus-existingValue, 0)

	result := &Result{
		YearsToRetirement:          yearsToRetire,
		RetirementYears:            retirementYears,
		MonthlyExpenseAtRetirement: mathutil.Round(expenseAtRetirement),
		CorpusRequired:             mathutil.Round(corpus),
		ExistingCorpusValue:        mathutil.Round(existingValue),
		CorpusShortfall:            mathutil.Round(shortfall),
		MonthlySIPRequired:         mathutil.Round(requiredSIP(shortfall, in.PreReturn, yearsToRetire*constants.MonthsPerYear)),
	}

	if in.PostReturn <= in.InflationRate {
		result.Warnings = append(result.Warnings,
			"post-retirement return does not beat inflation; the corpus only stretches linearly")
	}

	return result, nil
}

// drawdownFactor returns how many years' worth of the first retirement
// year's expenses the corpus must hold: the present value of an expense
// stream growing with inflation, discounted at the corpus return, with
// each year's expenses withdrawn up front.
func drawdownFactor(postReturn, inflation float64, years int) float64 {
	growth := 1.00 + inflation/constants.PercentageMultiplier
	discount := 1.00 + postReturn/constants.PercentageMultiplier

	ratio := growth / discount
	if mathutil.WithinTolerance(ratio, 1.00, 1e-9) {
		return float64(years)
	}
	return (1.00 - mathutil.CompoundFactor(ratio-1.00, float64(years))) / (1.00 - ratio)
}

// requiredSIP solves the monthly contribution whose future value reaches
// the target, with contributions at the start of each month.
func requiredSIP(target, annualRate float64, months int) float64 {
	if target == 0 {
		return 0
	}
	if annualRate == 0 {
		return target / float64(months)
	}

	rate := mathutil.MonthlyRate(annualRate)
	factor := (mathutil.CompoundFactor(rate, float64(months)) - 1.00) / rate * (1.00 + rate)
	return target / factor
}

func (in Input) validate() error {
	if in.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive, got %d", in.CurrentAge)
	}
	if in.RetirementAge <= in.CurrentAge {
		return fmt.Errorf("retirement age %d must be beyond the current age %d", in.RetirementAge, in.CurrentAge)
	}
	if in.LifeExpectancy <= in.RetirementAge {
		return fmt.Errorf("life expectancy %d must be beyond the retirement age %d", in.LifeExpectancy, in.RetirementAge)
	}
	if in.LifeExpectancy > 120 {
		return fmt.Errorf("life expectancy of %d is not supported", in.LifeExpectancy)
	}
	if in.MonthlyExpense <= 0 {
		return fmt.Errorf("monthly expense must be positive, got %.2f", in.MonthlyExpense)
	}
	if in.InflationRate < 0 || in.PreReturn < 0 || in.PostReturn < 0 {
		return fmt.Errorf("rates must not be negative")
	}
	if in.ExistingCorpus < 0 {
		return fmt.Errorf("existing corpus must not be negative, got %.2f", in.ExistingCorpus)
	}
	return nil
}
