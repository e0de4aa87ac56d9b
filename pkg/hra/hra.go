// Package hra computes the house rent allowance exemption under section
// 10(13A).
package hra

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Input holds the annual salary components for an HRA exemption check.
type Input struct {
	// Basic is the annual basic salary plus dearness allowance.
	Basic float64

	// HRAReceived is the annual house rent allowance paid by the employer.
	HRAReceived float64

	// RentPaid is the annual rent.
	RentPaid float64

	// Metro marks residence in Delhi, Mumbai, Kolkata or Chennai.
	Metro bool
}

// Result holds the exemption and the three candidate amounts the law
// compares; Exempt is the least of the three.
type Result struct {
	Exempt  float64 `json:"exempt"`
	Taxable float64 `json:"taxable"`

	ActualHRA   float64 `json:"actual_hra"`
	RentExcess  float64 `json:"rent_excess"`
	SalaryShare float64 `json:"salary_share"`

	// Binding names the candidate that limited the exemption.
	Binding string `json:"binding"`
}

// Candidate labels reported in Result.Binding.
const (
	BindingActualHRA   = "actual HRA received"
	BindingRentExcess  = "rent paid in excess of 10% of basic"
	BindingSalaryShare = "share of basic salary"
)

// Exemption computes the HRA exemption: the least of the allowance
// received, rent beyond 10% of basic, and 50% (metro) or 40% of basic.
func Exemption(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	sharePercent := constants.HRANonMetroPercent
	if in.Metro {
		sharePercent = constants.HRAMetroPercent
	}

	actual := in.HRAReceived
	rentExcess := mathutil.Max(in.RentPaid-mathutil.ApplyPercentage(in.Basic, 10), 0)
	salaryShare := mathutil.ApplyPercentage(in.Basic, sharePercent)

	exempt := actual
	binding := BindingActualHRA
	if rentExcess < exempt {
		exempt = rentExcess
		binding = BindingRentExcess
	}
	if salaryShare < exempt {
		exempt = salaryShare
		binding = BindingSalaryShare
	}

	return &Result{
		Exempt:      mathutil.Round(exempt),
		Taxable:     mathutil.Round(in.HRAReceived - exempt),
		ActualHRA:   mathutil.Round(actual),
		RentExcess:  mathutil.Round(rentExcess),
		SalaryShare: mathutil.Round(salaryShare),
		Binding:     binding,
	}, nil
}

func (in Input) validate() error {
	if in.Basic <= 0 {
		return fmt.Errorf("basic salary must be positive, got %.2f", in.Basic)
	}
	if in.HRAReceived < 0 {
		return fmt.Errorf("HRA received must not be negative, got %.2f", in.HRAReceived)
	}
	if in.RentPaid < 0 {
		return fmt.Errorf("rent paid must not be negative, got %.2f", in.RentPaid)
	}
	return nil
}
