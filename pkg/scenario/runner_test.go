package scenario

import (
	"math"
	"strings"
	"testing"

	"github.com/paisawise/paisawise/pkg/currency"
	"github.com/paisawise/paisawise/pkg/loan"
	"github.com/paisawise/paisawise/pkg/networth"
	"github.com/paisawise/paisawise/pkg/sip"
	"github.com/paisawise/paisawise/pkg/tax"
	"go.uber.org/zap"
)

func TestRunnerRun(t *testing.T) {
	runner := NewRunner(zap.NewNop(), nil)

	scenario := &Scenario{
		Calculations: []Calculation{
			{
				Name: "Car loan",
				Type: "emi",
				Params: map[string]interface{}{
					"principal":   800000,
					"annual_rate": 9.5,
					"term_months": 60,
				},
			},
			{
				Name: "Monthly investing",
				Type: "sip",
				Params: map[string]interface{}{
					"monthly":     10000,
					"annual_rate": 12,
					"years":       10,
				},
			},
			{
				Name: "Balance sheet",
				Type: "networth",
				Params: map[string]interface{}{
					"cash":      200000,
					"property":  5000000,
					"home_loan": 3000000,
				},
			},
		},
	}

	outcomes, err := runner.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	loanResult, ok := outcomes[0].Result.(*loan.Result)
	if !ok {
		t.Fatalf("outcome 0 result type = %T", outcomes[0].Result)
	}
	if math.Abs(loanResult.EMI-16802) > 1 {
		t.Errorf("EMI = %.2f, want about 16802", loanResult.EMI)
	}

	sipResult, ok := outcomes[1].Result.(*sip.Result)
	if !ok {
		t.Fatalf("outcome 1 result type = %T", outcomes[1].Result)
	}
	if math.Abs(sipResult.FutureValue-2323391) > 50 {
		t.Errorf("FutureValue = %.2f, want about 2323391", sipResult.FutureValue)
	}

	nwResult, ok := outcomes[2].Result.(*networth.Result)
	if !ok {
		t.Fatalf("outcome 2 result type = %T", outcomes[2].Result)
	}
	if nwResult.NetWorth != 2200000 {
		t.Errorf("NetWorth = %.2f, want 2200000", nwResult.NetWorth)
	}
}

func TestRunnerIncomeTaxModes(t *testing.T) {
	runner := NewRunner(nil, nil)

	compare := &Scenario{Calculations: []Calculation{{
		Type: "income-tax",
		Params: map[string]interface{}{
			"gross_income": 1500000,
		},
	}}}
	outcomes, err := runner.Run(compare)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := outcomes[0].Result.(*tax.Comparison); !ok {
		t.Errorf("default regime should compare, got %T", outcomes[0].Result)
	}

	single := &Scenario{Calculations: []Calculation{{
		Type: "income-tax",
		Params: map[string]interface{}{
			"regime":       "new",
			"gross_income": 1500000,
		},
	}}}
	outcomes, err = runner.Run(single)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := outcomes[0].Result.(*tax.Result); !ok {
		t.Errorf("new regime should return a single result, got %T", outcomes[0].Result)
	}
}

func TestRunnerCurrencyUsesTable(t *testing.T) {
	table, err := currency.NewTable(map[string]float64{"USD": 80})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	runner := NewRunner(nil, table)

	scenario := &Scenario{Calculations: []Calculation{{
		Type: "currency",
		Params: map[string]interface{}{
			"amount": 100,
			"from":   "USD",
			"to":     "INR",
		},
	}}}

	outcomes, err := runner.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	conv, ok := outcomes[0].Result.(*currency.Conversion)
	if !ok {
		t.Fatalf("result type = %T", outcomes[0].Result)
	}
	if math.Abs(conv.Converted-8000) > 0.01 {
		t.Errorf("Converted = %.2f, want 8000", conv.Converted)
	}
}

func TestRunnerUnknownType(t *testing.T) {
	runner := NewRunner(nil, nil)
	scenario := &Scenario{Calculations: []Calculation{{
		Type:   "lottery",
		Params: map[string]interface{}{},
	}}}

	_, err := runner.Run(scenario)
	if err == nil {
		t.Fatal("expected error for unknown calculation type")
	}
	if !strings.Contains(err.Error(), "valid types") || !strings.Contains(err.Error(), "emi") {
		t.Errorf("error should list the valid types: %v", err)
	}
}

func TestRunnerInvalidParams(t *testing.T) {
	runner := NewRunner(nil, nil)
	scenario := &Scenario{Calculations: []Calculation{{
		Name: "Broken",
		Type: "sip",
		Params: map[string]interface{}{
			"monthly": -100,
			"years":   10,
		},
	}}}

	_, err := runner.Run(scenario)
	if err == nil {
		t.Fatal("expected validation error for negative contribution")
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Errorf("error should name the calculation: %v", err)
	}
}

func TestRunnerWarningsSurface(t *testing.T) {
	runner := NewRunner(nil, nil)
	scenario := &Scenario{Calculations: []Calculation{{
		Type: "sip",
		Params: map[string]interface{}{
			"monthly":     5000,
			"annual_rate": 35,
			"years":       10,
		},
	}}}

	outcomes, err := runner.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(outcomes[0].Warnings) == 0 {
		t.Error("expected an optimistic-rate warning")
	}
}
