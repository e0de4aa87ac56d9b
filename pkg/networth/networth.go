// Package networth totals itemized assets and liabilities.
package networth

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/mathutil"
)

// Assets itemizes what a household owns.
type Assets struct {
	Cash        float64 `json:"cash"`
	Deposits    float64 `json:"deposits"`
	Investments float64 `json:"investments"`
	Property    float64 `json:"property"`
	Vehicle     float64 `json:"vehicle"`
	Other       float64 `json:"other"`
}

// Liabilities itemizes what a household owes.
type Liabilities struct {
	HomeLoan     float64 `json:"home_loan"`
	VehicleLoan  float64 `json:"vehicle_loan"`
	PersonalLoan float64 `json:"personal_loan"`
	CreditCard   float64 `json:"credit_card"`
	Other        float64 `json:"other"`
}

// Input holds both sides of the balance sheet.
type Input struct {
	Assets      Assets      `json:"assets"`
	Liabilities Liabilities `json:"liabilities"`
}

// Share is one asset category's slice of the total.
type Share struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// Result holds the computed balance sheet.
type Result struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`

	// NetWorth may be negative when liabilities outweigh assets.
	NetWorth float64 `json:"net_worth"`

	// LiabilityRatioPercent is liabilities as a percentage of assets;
	// zero when there are no assets.
	LiabilityRatioPercent float64 `json:"liability_ratio_percent"`

	// AssetShares lists the non-zero asset categories by their share.
	AssetShares []Share `json:"asset_shares"`
}

// Compute totals the balance sheet.
func Compute(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	categories := []struct {
		name   string
		amount float64
	}{
		{"cash", in.Assets.Cash},
		{"deposits", in.Assets.Deposits},
		{"investments", in.Assets.Investments},
		{"property", in.Assets.Property},
		{"vehicle", in.Assets.Vehicle},
		{"other", in.Assets.Other},
	}

	totalAssets := 0.0
	for _, c := range categories {
		totalAssets += c.amount
	}
	totalLiabilities := in.Liabilities.HomeLoan + in.Liabilities.VehicleLoan +
		in.Liabilities.PersonalLoan + in.Liabilities.CreditCard + in.Liabilities.Other

	shares := make([]Share, 0, len(categories))
	for _, c := range categories {
		if c.amount == 0 {
			continue
		}
		shares = append(shares, Share{
			Category: c.name,
			Amount:   mathutil.Round(c.amount),
			Percent:  mathutil.Round(mathutil.CalculatePercentage(c.amount, totalAssets)),
		})
	}

	return &Result{
		TotalAssets:           mathutil.Round(totalAssets),
		TotalLiabilities:      mathutil.Round(totalLiabilities),
		NetWorth:              mathutil.Round(totalAssets - totalLiabilities),
		LiabilityRatioPercent: mathutil.Round(mathutil.CalculatePercentage(totalLiabilities, totalAssets)),
		AssetShares:           shares,
	}, nil
}

func (in Input) validate() error {
	amounts := []float64{
		in.Assets.Cash, in.Assets.Deposits, in.Assets.Investments,
		in.Assets.Property, in.Assets.Vehicle, in.Assets.Other,
		in.Liabilities.HomeLoan, in.Liabilities.VehicleLoan,
		in.Liabilities.PersonalLoan, in.Liabilities.CreditCard, in.Liabilities.Other,
	}
	for _, a := range amounts {
		if a < 0 {
			return fmt.Errorf("balance sheet entries must not be negative, got %.2f", a)
		}
	}
	return nil
}
