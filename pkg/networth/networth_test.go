package networth

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	result, err := Compute(Input{
		Assets: Assets{
			Cash:        200000,
			Deposits:    800000,
			Investments: 1500000,
			Property:    5000000,
			Vehicle:     500000,
		},
		Liabilities: Liabilities{
			HomeLoan:    3000000,
			VehicleLoan: 200000,
			CreditCard:  50000,
		},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.TotalAssets != 8000000 {
		t.Errorf("TotalAssets = %.2f, expected 8000000", result.TotalAssets)
	}
	if result.TotalLiabilities != 3250000 {
		t.Errorf("TotalLiabilities = %.2f, expected 3250000", result.TotalLiabilities)
	}
	if result.NetWorth != 4750000 {
		t.Errorf("NetWorth = %.2f, expected 4750000", result.NetWorth)
	}
	if math.Abs(result.LiabilityRatioPercent-40.63) > 0.01 {
		t.Errorf("LiabilityRatioPercent = %.2f, expected 40.63", result.LiabilityRatioPercent)
	}

	// Five non-zero categories, shares summing to 100.
	if len(result.AssetShares) != 5 {
		t.Fatalf("AssetShares has %d entries, expected 5", len(result.AssetShares))
	}
	sum := 0.0
	for _, s := range result.AssetShares {
		sum += s.Percent
	}
	if math.Abs(sum-100) > 0.05 {
		t.Errorf("shares sum to %.2f, expected 100", sum)
	}

	if result.AssetShares[3].Category != "property" {
		t.Errorf("fourth share = %s, expected property", result.AssetShares[3].Category)
	}
	if result.AssetShares[3].Percent != 62.5 {
		t.Errorf("property share = %.2f, expected 62.5", result.AssetShares[3].Percent)
	}
}

func TestComputeNegativeNetWorth(t *testing.T) {
	result, err := Compute(Input{
		Assets:      Assets{Cash: 100000},
		Liabilities: Liabilities{PersonalLoan: 500000},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.NetWorth != -400000 {
		t.Errorf("NetWorth = %.2f, expected -400000", result.NetWorth)
	}
	if result.LiabilityRatioPercent != 500 {
		t.Errorf("LiabilityRatioPercent = %.2f, expected 500", result.LiabilityRatioPercent)
	}
}

func TestComputeNoAssets(t *testing.T) {
	result, err := Compute(Input{
		Liabilities: Liabilities{CreditCard: 75000},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.LiabilityRatioPercent != 0 {
		t.Errorf("LiabilityRatioPercent = %.2f, expected the zero-asset guard", result.LiabilityRatioPercent)
	}
	if len(result.AssetShares) != 0 {
		t.Errorf("AssetShares has %d entries, expected none", len(result.AssetShares))
	}
	if result.NetWorth != -75000 {
		t.Errorf("NetWorth = %.2f, expected -75000", result.NetWorth)
	}
}

func TestComputeInvalidInput(t *testing.T) {
	if _, err := Compute(Input{Assets: Assets{Cash: -1}}); err == nil {
		t.Error("Compute() expected error for negative asset")
	}
	if _, err := Compute(Input{Liabilities: Liabilities{Other: -100}}); err == nil {
		t.Error("Compute() expected error for negative liability")
	}
}
