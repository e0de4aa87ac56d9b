// Package ppf projects Public Provident Fund balances year by year.
package ppf

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Input holds the parameters for a PPF projection.
type Input struct {
	// Yearly is the contribution per financial year, bounded by the
	// statutory 500 to 1,50,000 range.
	Yearly float64

	// AnnualRate is the account rate; zero means the notified default.
	AnnualRate float64

	// Extensions is the number of five-year blocks added after the
	// initial fifteen-year term.
	Extensions int
}

// YearEntry holds the ledger values for one financial year.
type YearEntry struct {
	Year     int     `json:"year"`
	Opening  float64 `json:"opening"`
	Deposit  float64 `json:"deposit"`
	Interest float64 `json:"interest"`
	Closing  float64 `json:"closing"`
}

// Result holds the complete outcome of a PPF projection.
type Result struct {
	MaturityValue float64     `json:"maturity_value"`
	Invested      float64     `json:"invested"`
	Interest      float64     `json:"interest"`
	TermYears     int         `json:"term_years"`
	RatePercent   float64     `json:"rate_percent"`
	Ledger        []YearEntry `json:"ledger"`
}

// Project computes the year-by-year PPF ledger. Contributions are assumed
// deposited at the start of the year, earning the full year's interest,
// and interest compounds annually.
func Project(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rate := in.AnnualRate
	if rate == 0 {
		rate = constants.PPFDefaultRatePercent
	}

	years := constants.PPFTermYears + in.Extensions*constants.PPFExtensionYears

	result := &Result{
		TermYears:   years,
		RatePercent: rate,
		Ledger:      make([]YearEntry, 0, years),
	}

	balance := 0.0
	for year := 1; year <= years; year++ {
		opening := balance
		interest := mathutil.ApplyPercentage(opening+in.Yearly, rate)
		balance = opening + in.Yearly + interest

		result.Ledger = append(result.Ledger, YearEntry{
			Year:     year,
			Opening:  mathutil.Round(opening),
			Deposit:  in.Yearly,
			Interest: mathutil.Round(interest),
			Closing:  mathutil.Round(balance),
		})
	}

	invested := in.Yearly * float64(years)
	result.MaturityValue = mathutil.Round(balance)
	result.Invested = mathutil.Round(invested)
	result.Interest = mathutil.Round(balance - invested)

	return result, nil
}

func (in Input) validate() error {
	if in.Yearly < constants.PPFMinYearlyDeposit {
		return fmt.Errorf("yearly contribution must be at least %.0f, got %.2f",
			constants.PPFMinYearlyDeposit, in.Yearly)
	}
	if in.Yearly > constants.PPFMaxYearlyDeposit {
		return fmt.Errorf("yearly contribution must not exceed %.0f, got %.2f",
			constants.PPFMaxYearlyDeposit, in.Yearly)
	}
	if in.AnnualRate < 0 {
		return fmt.Errorf("annual rate must not be negative, got %.2f", in.AnnualRate)
	}
	if in.AnnualRate > constants.MaxRatePercent {
		return fmt.Errorf("annual rate of %.2f exceeds the maximum of %.0f",
			in.AnnualRate, constants.MaxRatePercent)
	}
	if in.Extensions < 0 || in.Extensions > 7 {
		return fmt.Errorf("extensions must be between 0 and 7 blocks, got %d", in.Extensions)
	}
	return nil
}
