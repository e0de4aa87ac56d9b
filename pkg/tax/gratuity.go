package tax

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// GratuityInput holds the parameters for a gratuity calculation.
type GratuityInput struct {
	// MonthlySalary is the last drawn basic salary plus dearness allowance.
	MonthlySalary float64

	// YearsOfService may be fractional; service beyond six months in the
	// final year counts as a full year.
	YearsOfService float64
}

// GratuityResult holds the outcome of a gratuity calculation.
type GratuityResult struct {
	// Eligible is false before five completed years of service; the
	// amounts are zero in that case.
	Eligible bool `json:"eligible"`

	// YearsCounted is the service rounded per the Payment of Gratuity Act.
	YearsCounted int `json:"years_counted"`

	// Amount is the act's formula amount: 15/26 of the monthly salary per
	// year of service.
	Amount float64 `json:"amount"`

	// Payable caps the amount at the statutory 20 lakh ceiling.
	Payable float64 `json:"payable"`
}

// Gratuity calculates the gratuity due under the Payment of Gratuity Act
// for covered establishments.
func Gratuity(in GratuityInput) (*GratuityResult, error) {
	if in.MonthlySalary <= 0 {
		return nil, fmt.Errorf("monthly salary must be positive, got %.2f", in.MonthlySalary)
	}
	if in.YearsOfService < 0 {
		return nil, fmt.Errorf("years of service must not be negative, got %.2f", in.YearsOfService)
	}
	if in.YearsOfService > 60 {
		return nil, fmt.Errorf("years of service of %.1f is beyond a working lifetime", in.YearsOfService)
	}

	if in.YearsOfService < constants.GratuityMinServiceYears {
		return &GratuityResult{}, nil
	}

	years := int(in.YearsOfService)
	if in.YearsOfService-float64(years) > 0.5 {
		years++
	}

	amount := 15.0 / 26.0 * in.MonthlySalary * float64(years)

	return &GratuityResult{
		Eligible:     true,
		YearsCounted: years,
		Amount:       mathutil.Round(amount),
		Payable:      mathutil.Round(mathutil.Min(amount, constants.GratuityCap)),
	}, nil
}
