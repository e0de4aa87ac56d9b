// Package sip projects the growth of systematic investment plans.
package sip

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Input holds the parameters for a SIP projection.
type Input struct {
	Monthly    float64
	AnnualRate float64
	Years      int

	// StepUpPercent optionally grows the contribution after each completed
	// year of investing.
	StepUpPercent float64
}

// Result holds the outcome of a SIP projection.
type Result struct {
	FutureValue float64 `json:"future_value"`
	Invested    float64 `json:"invested"`
	WealthGain  float64 `json:"wealth_gain"`
}

// FutureValue calculates the maturity value of a fixed monthly contribution
// using the annuity-due closed form; contributions are made at the start of
// each month.
func FutureValue(monthly, annualRate float64, months int) float64 {
	if annualRate == 0 {
		return monthly * float64(months)
	}

	periodicRate := mathutil.MonthlyRate(annualRate)
	power := mathutil.CompoundFactor(periodicRate, float64(months))
	return monthly * (power - 1.00) / periodicRate * (1.00 + periodicRate)
}

// Project computes the future value, amount invested, and wealth gained for
// the input. A step-up plan is accumulated month by month since the
// contribution changes each year; a flat plan uses the closed form.
func Project(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	months := in.Years * constants.MonthsPerYear

	var futureValue, invested float64
	if in.StepUpPercent == 0 {
		futureValue = FutureValue(in.Monthly, in.AnnualRate, months)
		invested = in.Monthly * float64(months)
	} else {
		periodicRate := mathutil.MonthlyRate(in.AnnualRate)
		contribution := in.Monthly
		for month := 1; month <= months; month++ {
			futureValue = (futureValue + contribution) * (1.00 + periodicRate)
			invested += contribution
			if month%constants.MonthsPerYear == 0 {
				contribution = mathutil.ApplyPercentage(contribution, 100+in.StepUpPercent)
			}
		}
	}

	return &Result{
		FutureValue: mathutil.Round(futureValue),
		Invested:    mathutil.Round(invested),
		WealthGain:  mathutil.Round(futureValue - invested),
	}, nil
}

func (in Input) validate() error {
	if in.Monthly <= 0 {
		return fmt.Errorf("monthly contribution must be positive, got %.2f", in.Monthly)
	}
	if in.AnnualRate < 0 {
		return fmt.Errorf("annual rate must not be negative, got %.2f", in.AnnualRate)
	}
	if in.Years <= 0 {
		return fmt.Errorf("duration must be at least one year, got %d", in.Years)
	}
	if in.Years > constants.MaxTenureYears {
		return fmt.Errorf("duration of %d years exceeds the maximum of %d", in.Years, constants.MaxTenureYears)
	}
	if in.StepUpPercent < 0 || in.StepUpPercent > 100 {
		return fmt.Errorf("step-up must be between 0 and 100 percent, got %.2f", in.StepUpPercent)
	}
	return nil
}
