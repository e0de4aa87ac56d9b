package currency

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name      string
		amount    float64
		from, to  string
		expected  float64
		tolerance float64
	}{
		{name: "USD to INR", amount: 100, from: "USD", to: "INR", expected: 8750, tolerance: 0.01},
		{name: "INR to USD", amount: 8750, from: "INR", to: "USD", expected: 100, tolerance: 0.01},
		{name: "cross rate USD to EUR", amount: 100, from: "USD", to: "EUR", expected: 91.91, tolerance: 0.01},
		{name: "lowercase codes accepted", amount: 100, from: "usd", to: "inr", expected: 8750, tolerance: 0.01},
		{name: "identity conversion", amount: 500, from: "EUR", to: "EUR", expected: 500, tolerance: 0.001},
		{name: "zero amount", amount: 0, from: "USD", to: "EUR", expected: 0, tolerance: 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := table.Convert(tt.amount, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if math.Abs(result.Converted-tt.expected) > tt.tolerance {
				t.Errorf("Converted = %.2f, expected %.2f", result.Converted, tt.expected)
			}
		})
	}
}

func TestConvertUnknownCode(t *testing.T) {
	table := DefaultTable()

	_, err := table.Convert(100, "USD", "XYZ")
	if err == nil {
		t.Fatal("Convert() expected error for unknown code")
	}
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("error = %v, expected ErrUnknownCurrency", err)
	}
}

func TestConvertNegativeAmount(t *testing.T) {
	table := DefaultTable()

	if _, err := table.Convert(-1, "USD", "INR"); err == nil {
		t.Error("Convert() expected error for negative amount")
	}
}

func TestNewTableOverrides(t *testing.T) {
	table, err := NewTable(map[string]float64{"USD": 90, "KWD": 285.5})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	result, err := table.Convert(100, "USD", "INR")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Converted != 9000 {
		t.Errorf("Converted = %.2f, expected the overridden 9000", result.Converted)
	}

	if _, err := table.Rate("KWD"); err != nil {
		t.Errorf("Rate(KWD) error = %v, expected the added code to resolve", err)
	}
}

func TestNewTableRejectsBadRates(t *testing.T) {
	if _, err := NewTable(map[string]float64{"USD": -5}); err == nil {
		t.Error("NewTable() expected error for negative rate")
	}
	if _, err := NewTable(map[string]float64{"INR": 2}); err == nil {
		t.Error("NewTable() expected error for repegging INR")
	}
	if _, err := NewTable(map[string]float64{"": 10}); err == nil {
		t.Error("NewTable() expected error for empty code")
	}
}

func TestCodes(t *testing.T) {
	codes := DefaultTable().Codes()

	if len(codes) < 10 {
		t.Fatalf("Codes() returned %d codes, expected the full table", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %s before %s", codes[i-1], codes[i])
		}
	}

	found := false
	for _, c := range codes {
		if c == "INR" {
			found = true
		}
	}
	if !found {
		t.Error("Codes() missing INR")
	}
}

func TestWithRate(t *testing.T) {
	result, err := WithRate(250, "usd", "inr", 88.1234567)
	if err != nil {
		t.Fatalf("WithRate() error = %v", err)
	}

	if result.From != "USD" || result.To != "INR" {
		t.Errorf("codes = %s/%s, expected USD/INR", result.From, result.To)
	}
	if result.Rate != 88.123457 {
		t.Errorf("Rate = %f, expected 88.123457", result.Rate)
	}
	if math.Abs(result.Converted-22030.86) > 0.01 {
		t.Errorf("Converted = %.2f, expected 22030.86", result.Converted)
	}

	if _, err := WithRate(100, "USD", "INR", 0); err == nil {
		t.Error("WithRate() expected error for zero rate")
	}
}
