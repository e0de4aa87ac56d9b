package tax

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Deductions holds the itemized deductions the old regime accepts. The new
// regime ignores everything here; both regimes apply their own standard
// deduction on top.
type Deductions struct {
	// Section80C investments (PPF, ELSS, life insurance), capped at 1.5 lakh.
	Section80C float64 `json:"section_80c"`

	// Section80D health insurance premiums, capped at 1 lakh.
	Section80D float64 `json:"section_80d"`

	// HomeLoanInterest under section 24(b), capped at 2 lakh.
	HomeLoanInterest float64 `json:"home_loan_interest"`

	// Other covers the remaining chapter VI-A claims (80CCD(1B), 80G, ...).
	Other float64 `json:"other"`
}

func (d Deductions) total() float64 {
	return mathutil.Min(d.Section80C, deduction80CCap) +
		mathutil.Min(d.Section80D, deduction80DCap) +
		mathutil.Min(d.HomeLoanInterest, homeLoanInterestCap) +
		d.Other
}

func (d Deductions) validate() error {
	if d.Section80C < 0 || d.Section80D < 0 || d.HomeLoanInterest < 0 || d.Other < 0 {
		return fmt.Errorf("deductions must not be negative")
	}
	return nil
}

// SlabTax is one row of the bracket breakup: the slice of taxable income
// falling in a slab and the tax it draws.
type SlabTax struct {
	From        float64 `json:"from"`
	To          float64 `json:"to,omitempty"`
	RatePercent float64 `json:"rate_percent"`
	Amount      float64 `json:"amount"`
}

// Result holds the complete outcome of a tax computation.
type Result struct {
	Regime        Regime    `json:"regime"`
	Gross         float64   `json:"gross"`
	Taxable       float64   `json:"taxable"`
	SlabTax       float64   `json:"slab_tax"`
	SlabBreakup   []SlabTax `json:"slab_breakup"`
	Rebate        float64   `json:"rebate"`
	Surcharge     float64   `json:"surcharge"`
	Cess          float64   `json:"cess"`
	Total         float64   `json:"total"`
	EffectiveRate float64   `json:"effective_rate"`
}

// Compute calculates the income tax for one regime on a gross annual
// income. The old regime applies the itemized deductions; the new regime
// only its standard deduction. Order of operations: slab tax, section 87A
// rebate (with marginal relief in the new regime), surcharge, cess.
func Compute(regime Regime, gross float64, deductions Deductions) (*Result, error) {
	if err := validateGross(regime, gross); err != nil {
		return nil, err
	}
	if err := deductions.validate(); err != nil {
		return nil, err
	}

	taxable := gross - standardDeduction(regime)
	if regime == RegimeOld {
		taxable -= deductions.total()
	}
	taxable = mathutil.Max(taxable, 0)

	slabTax, breakup := applySlabs(Slabs(regime), taxable)
	rebate := rebateFor(regime, taxable, slabTax)
	afterRebate := slabTax - rebate

	surcharge := mathutil.ApplyPercentage(afterRebate, surchargePercent(regime, taxable))
	cess := mathutil.ApplyPercentage(afterRebate+surcharge, cessPercent)
	total := afterRebate + surcharge + cess

	return &Result{
		Regime:        regime,
		Gross:         gross,
		Taxable:       mathutil.Round(taxable),
		SlabTax:       mathutil.Round(slabTax),
		SlabBreakup:   breakup,
		Rebate:        mathutil.Round(rebate),
		Surcharge:     mathutil.Round(surcharge),
		Cess:          mathutil.Round(cess),
		Total:         mathutil.Round(total),
		EffectiveRate: mathutil.Round(mathutil.CalculatePercentage(total, gross)),
	}, nil
}

// Comparison holds both regimes' results for one income.
type Comparison struct {
	New         *Result `json:"new"`
	Old         *Result `json:"old"`
	Recommended Regime  `json:"recommended"`
	Saving      float64 `json:"saving"`
}

// CompareRegimes computes both regimes and recommends the cheaper one; on
// a tie the new regime wins since it is the default.
func CompareRegimes(gross float64, deductions Deductions) (*Comparison, error) {
	newResult, err := Compute(RegimeNew, gross, deductions)
	if err != nil {
		return nil, err
	}
	oldResult, err := Compute(RegimeOld, gross, deductions)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		New:         newResult,
		Old:         oldResult,
		Recommended: RegimeNew,
		Saving:      mathutil.Round(oldResult.Total - newResult.Total),
	}
	if oldResult.Total < newResult.Total {
		cmp.Recommended = RegimeOld
		cmp.Saving = mathutil.Round(newResult.Total - oldResult.Total)
	}
	return cmp, nil
}

// applySlabs walks the slab table and returns the total slab tax plus the
// per-bracket breakup for the slabs the income reaches.
func applySlabs(slabs []Slab, taxable float64) (float64, []SlabTax) {
	total := 0.0
	breakup := make([]SlabTax, 0, len(slabs))

	lower := 0.0
	for _, s := range slabs {
		if taxable <= lower {
			break
		}

		upper := s.UpTo
		slice := taxable - lower
		if upper != 0 && taxable > upper {
			slice = upper - lower
		}

		amount := mathutil.ApplyPercentage(slice, s.RatePercent)
		total += amount

		row := SlabTax{
			From:        lower,
			To:          upper,
			RatePercent: s.RatePercent,
			Amount:      mathutil.Round(amount),
		}
		breakup = append(breakup, row)

		if upper == 0 {
			break
		}
		lower = upper
	}

	return total, breakup
}

// rebateFor applies section 87A. In the new regime marginal relief keeps
// the tax on income just past the threshold from exceeding the excess
// income itself.
func rebateFor(regime Regime, taxable, slabTax float64) float64 {
	if regime == RegimeOld {
		if taxable <= rebateThresholdOld {
			return mathutil.Min(slabTax, rebateCapOld)
		}
		return 0
	}

	if taxable <= rebateThresholdNew {
		return mathutil.Min(slabTax, rebateCapNew)
	}
	excess := taxable - rebateThresholdNew
	if slabTax > excess {
		return slabTax - excess
	}
	return 0
}

func validateGross(regime Regime, gross float64) error {
	if regime != RegimeNew && regime != RegimeOld {
		return fmt.Errorf("unknown regime %q", string(regime))
	}
	if gross <= 0 {
		return fmt.Errorf("gross income must be positive, got %.2f", gross)
	}
	if gross > constants.MaxAmount {
		return fmt.Errorf("gross income of %.2f exceeds the maximum supported", gross)
	}
	return nil
}
