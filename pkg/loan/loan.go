// Package loan provides EMI and amortization schedule calculations.
package loan

import (
	"fmt"
	"math"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Input holds the parameters for an EMI calculation.
type Input struct {
	Principal  float64
	AnnualRate float64
	TermMonths int

	// StartMonth optionally anchors the schedule to calendar months
	// ("2006-01" layout). When empty, rows carry period numbers only.
	StartMonth string

	// ExtraMonthly is an optional recurring extra principal payment made
	// with every installment.
	ExtraMonthly float64

	// ExtraYearly is an optional extra principal payment made with every
	// twelfth installment.
	ExtraYearly float64
}

// Payment holds the values for a single installment.
type Payment struct {
	Period    int     `json:"period"`
	Month     string  `json:"month,omitempty"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// YearRow aggregates schedule rows for one loan year.
type YearRow struct {
	Year           int     `json:"year"`
	Payment        float64 `json:"payment"`
	Principal      float64 `json:"principal"`
	Interest       float64 `json:"interest"`
	ClosingBalance float64 `json:"closing_balance"`
}

// Result holds the complete outcome of an EMI calculation.
type Result struct {
	EMI           float64   `json:"emi"`
	TotalInterest float64   `json:"total_interest"`
	TotalPayment  float64   `json:"total_payment"`
	MonthsToRepay int       `json:"months_to_repay"`
	InterestSaved float64   `json:"interest_saved"`
	Schedule      []Payment `json:"schedule"`
	Yearly        []YearRow `json:"yearly"`
}

// MonthlyPayment calculates the fixed monthly installment for a loan using
// the standard amortization formula.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := mathutil.MonthlyRate(annualRate)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// InterestPortion calculates the interest component of one installment on
// the given outstanding balance.
func InterestPortion(balance, annualRate float64) float64 {
	return balance * annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

func (in Input) validate() error {
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
	if in.ExtraMonthly < 0 || in.ExtraYearly < 0 {
		return fmt.Errorf("extra payments must not be negative")
	}
	return nil
}
