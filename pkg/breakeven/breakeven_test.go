package breakeven

import (
	"errors"
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	result, err := Compute(Input{
		FixedCosts:          50000,
		PricePerUnit:        100,
		VariableCostPerUnit: 60,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.ContributionMargin != 40 {
		t.Errorf("ContributionMargin = %.2f, expected 40", result.ContributionMargin)
	}
	if result.ContributionMarginRatioPercent != 40 {
		t.Errorf("ContributionMarginRatioPercent = %.2f, expected 40", result.ContributionMarginRatioPercent)
	}
	if result.BreakEvenUnits != 1250 {
		t.Errorf("BreakEvenUnits = %d, expected 1250", result.BreakEvenUnits)
	}
	if result.BreakEvenRevenue != 125000 {
		t.Errorf("BreakEvenRevenue = %.2f, expected 125000", result.BreakEvenRevenue)
	}
	if result.TargetProfitUnits != 0 {
		t.Errorf("TargetProfitUnits = %d, expected 0 without a target", result.TargetProfitUnits)
	}
}

func TestComputeWithTargetProfit(t *testing.T) {
	result, err := Compute(Input{
		FixedCosts:          50000,
		PricePerUnit:        100,
		VariableCostPerUnit: 60,
		TargetProfit:        20000,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.TargetProfitUnits != 1750 {
		t.Errorf("TargetProfitUnits = %d, expected 1750", result.TargetProfitUnits)
	}
	if result.TargetProfitRevenue != 175000 {
		t.Errorf("TargetProfitRevenue = %.2f, expected 175000", result.TargetProfitRevenue)
	}
}

func TestComputeRoundsUnitsUp(t *testing.T) {
	result, err := Compute(Input{
		FixedCosts:          50000,
		PricePerUnit:        99.5,
		VariableCostPerUnit: 60,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// 50,000 / 39.50 = 1265.82..., which must round up to a whole unit.
	if result.BreakEvenUnits != 1266 {
		t.Errorf("BreakEvenUnits = %d, expected 1266", result.BreakEvenUnits)
	}
	if math.Abs(result.BreakEvenRevenue-125967) > 0.01 {
		t.Errorf("BreakEvenRevenue = %.2f, expected 125967", result.BreakEvenRevenue)
	}
}

func TestComputeNoBreakEven(t *testing.T) {
	_, err := Compute(Input{
		FixedCosts:          50000,
		PricePerUnit:        60,
		VariableCostPerUnit: 60,
	})
	if err == nil {
		t.Fatal("Compute() expected error when the margin is zero")
	}
	if !errors.Is(err, ErrNoBreakEven) {
		t.Errorf("error = %v, expected ErrNoBreakEven", err)
	}
}

func TestComputeInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "negative fixed costs", in: Input{FixedCosts: -1, PricePerUnit: 100, VariableCostPerUnit: 60}},
		{name: "zero price", in: Input{FixedCosts: 1000, PricePerUnit: 0, VariableCostPerUnit: 0}},
		{name: "negative variable cost", in: Input{FixedCosts: 1000, PricePerUnit: 100, VariableCostPerUnit: -5}},
		{name: "negative target profit", in: Input{FixedCosts: 1000, PricePerUnit: 100, VariableCostPerUnit: 60, TargetProfit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.in); err == nil {
				t.Error("Compute() expected error, got nil")
			}
		})
	}
}
