// Package tax computes Indian income tax for the new and old regimes,
// along with related statutory amounts.
package tax

// Regime selects which slab table and deduction rules apply.
type Regime string

// Supported tax regimes.
const (
	RegimeNew Regime = "new"
	RegimeOld Regime = "old"
)

// Slab is one bracket of a regime's slab table. UpTo is the upper bound of
// the bracket; zero marks the open-ended top bracket.
type Slab struct {
	UpTo        float64 `json:"up_to"`
	RatePercent float64 `json:"rate_percent"`
}

// Slab tables for financial year 2024-25 (assessment year 2025-26).
var (
	newRegimeSlabs = []Slab{
		{UpTo: 300000, RatePercent: 0},
		{UpTo: 700000, RatePercent: 5},
		{UpTo: 1000000, RatePercent: 10},
		{UpTo: 1200000, RatePercent: 15},
		{UpTo: 1500000, RatePercent: 20},
		{UpTo: 0, RatePercent: 30},
	}

	oldRegimeSlabs = []Slab{
		{UpTo: 250000, RatePercent: 0},
		{UpTo: 500000, RatePercent: 5},
		{UpTo: 1000000, RatePercent: 20},
		{UpTo: 0, RatePercent: 30},
	}
)

// Statutory parameters per regime for financial year 2024-25.
const (
	standardDeductionNew = 75000.0
	standardDeductionOld = 50000.0

	// Section 87A rebate: taxable income up to the threshold pays no tax.
	rebateThresholdNew = 700000.0
	rebateCapNew       = 25000.0
	rebateThresholdOld = 500000.0
	rebateCapOld       = 12500.0

	// Section 80C and section 24(b) deduction ceilings (old regime).
	deduction80CCap     = 150000.0
	deduction80DCap     = 100000.0
	homeLoanInterestCap = 200000.0
	cessPercent         = 4.0
	surchargeCapNewPct  = 25.0
)

// surchargeSlab maps a taxable-income floor to a surcharge percentage.
type surchargeSlab struct {
	Above       float64
	RatePercent float64
}

// Surcharge applies on the tax amount once taxable income crosses 50 lakh.
var surchargeSlabs = []surchargeSlab{
	{Above: 50000000, RatePercent: 37},
	{Above: 20000000, RatePercent: 25},
	{Above: 10000000, RatePercent: 15},
	{Above: 5000000, RatePercent: 10},
}

// Slabs returns the slab table for a regime.
func Slabs(regime Regime) []Slab {
	if regime == RegimeOld {
		return oldRegimeSlabs
	}
	return newRegimeSlabs
}

func surchargePercent(regime Regime, taxable float64) float64 {
	for _, s := range surchargeSlabs {
		if taxable > s.Above {
			// The new regime caps the surcharge at 25%.
			if regime == RegimeNew && s.RatePercent > surchargeCapNewPct {
				return surchargeCapNewPct
			}
			return s.RatePercent
		}
	}
	return 0
}

func standardDeduction(regime Regime) float64 {
	if regime == RegimeOld {
		return standardDeductionOld
	}
	return standardDeductionNew
}
