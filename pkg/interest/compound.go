// Package interest provides compound, simple, CAGR and inflation math for
// one-time amounts.
package interest

import (
	"fmt"
	"math"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Frequency names a compounding frequency.
type Frequency string

// Supported compounding frequencies.
const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyHalfYearly Frequency = "half-yearly"
	FrequencyYearly     Frequency = "yearly"
)

func (f Frequency) periodsPerYear() (int, error) {
	switch f {
	case FrequencyMonthly:
		return 12, nil
	case FrequencyQuarterly:
		return 4, nil
	case FrequencyHalfYearly:
		return 2, nil
	case FrequencyYearly:
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown compounding frequency %q", string(f))
	}
}

// CompoundInput holds the parameters for a compound interest calculation.
type CompoundInput struct {
	Principal  float64
	AnnualRate float64

	// Years may be fractional.
	Years float64

	// Frequency defaults to yearly compounding.
	Frequency Frequency
}

// YearRow shows the balance growth over one year.
type YearRow struct {
	Year     int     `json:"year"`
	Opening  float64 `json:"opening"`
	Interest float64 `json:"interest"`
	Closing  float64 `json:"closing"`
}

// CompoundResult holds the outcome of a compound interest calculation.
type CompoundResult struct {
	Amount   float64   `json:"amount"`
	Interest float64   `json:"interest"`
	Yearly   []YearRow `json:"yearly"`
}

// Compound grows a principal at the given rate and compounding frequency.
// The yearly breakdown closes its last row at the final fractional year
// when the term is not whole.
func Compound(in CompoundInput) (*CompoundResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	frequency := in.Frequency
	if frequency == "" {
		frequency = FrequencyYearly
	}
	periods, err := frequency.periodsPerYear()
	if err != nil {
		return nil, err
	}

	rate := mathutil.PeriodicRate(in.AnnualRate, periods)
	perYear := float64(periods)

	amount := in.Principal * mathutil.CompoundFactor(rate, perYear*in.Years)

	years := int(math.Ceil(in.Years))
	yearly := make([]YearRow, 0, years)
	opening := in.Principal
	for year := 1; year <= years; year++ {
		elapsed := math.Min(float64(year), in.Years)
		closing := in.Principal * mathutil.CompoundFactor(rate, perYear*elapsed)
		yearly = append(yearly, YearRow{
			Year:     year,
			Opening:  mathutil.Round(opening),
			Interest: mathutil.Round(closing - opening),
			Closing:  mathutil.Round(closing),
		})
		opening = closing
	}

	return &CompoundResult{
		Amount:   mathutil.Round(amount),
		Interest: mathutil.Round(amount - in.Principal),
		Yearly:   yearly,
	}, nil
}

// LumpsumResult frames compound growth as a one-time investment.
type LumpsumResult struct {
	FutureValue float64   `json:"future_value"`
	Invested    float64   `json:"invested"`
	WealthGain  float64   `json:"wealth_gain"`
	Yearly      []YearRow `json:"yearly"`
}

// Lumpsum projects a one-time investment compounding yearly at the
// expected return.
func Lumpsum(amount, annualRate float64, years int) (*LumpsumResult, error) {
	if years <= 0 {
		return nil, fmt.Errorf("duration must be at least one year, got %d", years)
	}

	compound, err := Compound(CompoundInput{
		Principal:  amount,
		AnnualRate: annualRate,
		Years:      float64(years),
	})
	if err != nil {
		return nil, err
	}

	return &LumpsumResult{
		FutureValue: compound.Amount,
		Invested:    mathutil.Round(amount),
		WealthGain:  compound.Interest,
		Yearly:      compound.Yearly,
	}, nil
}

func (in CompoundInput) validate() error {
	if in.Principal <= 0 {
		return fmt.Errorf("principal must be positive, got %.2f", in.Principal)
	}
	if in.AnnualRate < 0 {
		return fmt.Errorf("annual rate must not be negative, got %.2f", in.AnnualRate)
	}
	if in.Years <= 0 {
		return fmt.Errorf("duration must be positive, got %.2f", in.Years)
	}
	if in.Years > constants.MaxTenureYears {
		return fmt.Errorf("duration of %.1f years exceeds the maximum of %d", in.Years, constants.MaxTenureYears)
	}
	return nil
}
