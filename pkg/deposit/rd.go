package deposit

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// RDInput holds the parameters for a recurring deposit.
type RDInput struct {
	Monthly    float64
	AnnualRate float64
	TermMonths int
}

// RDResult holds the outcome of a recurring deposit calculation.
type RDResult struct {
	MaturityValue float64 `json:"maturity_value"`
	Deposited     float64 `json:"deposited"`
	Interest      float64 `json:"interest"`
}

// RecurringDeposit calculates the maturity value of a recurring deposit
// with quarterly rests, the convention Indian banks and the post office
// use: each month-start installment compounds quarterly for the months it
// remains invested.
func RecurringDeposit(in RDInput) (*RDResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	deposited := in.Monthly * float64(in.TermMonths)

	var maturity float64
	if in.AnnualRate == 0 {
		maturity = deposited
	} else {
		quarterlyRate := mathutil.PeriodicRate(in.AnnualRate, constants.QuartersPerYear)
		monthFactor := mathutil.CompoundFactor(quarterlyRate, 1.0/3.0)
		termFactor := mathutil.CompoundFactor(quarterlyRate, float64(in.TermMonths)/3.0)
		maturity = in.Monthly * monthFactor * (termFactor - 1.00) / (monthFactor - 1.00)
	}

	return &RDResult{
		MaturityValue: mathutil.Round(maturity),
		Deposited:     mathutil.Round(deposited),
		Interest:      mathutil.Round(maturity - deposited),
	}, nil
}

func (in RDInput) validate() error {
	if in.Monthly <= 0 {
		return fmt.Errorf("monthly installment must be positive, got %.2f", in.Monthly)
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
