package integration

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/paisawise/paisawise/pkg/currency"
	"github.com/paisawise/paisawise/pkg/loan"
	"github.com/paisawise/paisawise/pkg/networth"
	"github.com/paisawise/paisawise/pkg/scenario"
	"github.com/paisawise/paisawise/pkg/sip"
	"github.com/paisawise/paisawise/pkg/tax"
	"github.com/paisawise/paisawise/pkg/testutil"
	"go.uber.org/zap"
)

func runTestScenario(t *testing.T) []scenario.Outcome {
	t.Helper()

	scn, err := scenario.LoadScenario("../test_scenario.yaml")
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}

	rates, err := currency.NewTable(scn.Currency.Rates)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	outcomes, err := scenario.NewRunner(zap.NewNop(), rates).Run(scn)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return outcomes
}

// TestScenarioBaseline checks that the test scenario produces the same
// results as the baseline captured from the current working version.
func TestScenarioBaseline(t *testing.T) {
	outcomes := runTestScenario(t)

	if len(outcomes) != 6 {
		t.Fatalf("Expected 6 outcomes, got %d", len(outcomes))
	}

	expectedNames := []string{
		"Home loan",
		"Zero-rate loan",
		"Monthly SIP",
		"Regime comparison",
		"Dollar conversion",
		"Family net worth",
	}
	for i, expected := range expectedNames {
		if outcomes[i].Name != expected {
			t.Errorf("Expected outcome %s at position %d, got %s", expected, i, outcomes[i].Name)
		}
	}

	validateBaselineValues(t, outcomes)
}

// validateBaselineValues checks specific key values against our baseline
func validateBaselineValues(t *testing.T, outcomes []scenario.Outcome) {
	homeLoan := testutil.FindOutcome(outcomes, "Home loan")
	if homeLoan == nil {
		t.Fatal("Outcome 'Home loan' not found in results")
	}
	if result, ok := homeLoan.Result.(*loan.Result); !ok {
		t.Errorf("Expected a loan result for 'Home loan', got %T", homeLoan.Result)
	} else if math.Abs(result.EMI-26035.0) > 2.0 {
		t.Errorf("Home loan EMI: expected 26035.00, got %.2f", result.EMI)
	}

	zeroRate := testutil.FindOutcome(outcomes, "Zero-rate loan")
	if zeroRate == nil {
		t.Fatal("Outcome 'Zero-rate loan' not found in results")
	}
	if result, ok := zeroRate.Result.(*loan.Result); !ok {
		t.Errorf("Expected a loan result for 'Zero-rate loan', got %T", zeroRate.Result)
	} else if result.EMI != 10000.0 {
		t.Errorf("Zero-rate loan EMI: expected 10000.00, got %.2f", result.EMI)
	}

	monthlySIP := testutil.FindOutcome(outcomes, "Monthly SIP")
	if monthlySIP == nil {
		t.Fatal("Outcome 'Monthly SIP' not found in results")
	}
	if result, ok := monthlySIP.Result.(*sip.Result); !ok {
		t.Errorf("Expected a sip result for 'Monthly SIP', got %T", monthlySIP.Result)
	} else if math.Abs(result.FutureValue-2323391.0) > 50.0 {
		t.Errorf("Monthly SIP future value: expected 2323391, got %.2f", result.FutureValue)
	}

	comparison := testutil.FindOutcome(outcomes, "Regime comparison")
	if comparison == nil {
		t.Fatal("Outcome 'Regime comparison' not found in results")
	}
	if result, ok := comparison.Result.(*tax.Comparison); !ok {
		t.Errorf("Expected a tax comparison for 'Regime comparison', got %T", comparison.Result)
	} else {
		if result.New == nil || result.Old == nil {
			t.Error("Regime comparison should carry both regimes")
		}
		if result.Recommended != tax.RegimeNew && result.Recommended != tax.RegimeOld {
			t.Errorf("Regime comparison recommended %q", result.Recommended)
		}
	}

	conversion := testutil.FindOutcome(outcomes, "Dollar conversion")
	if conversion == nil {
		t.Fatal("Outcome 'Dollar conversion' not found in results")
	}
	if result, ok := conversion.Result.(*currency.Conversion); !ok {
		t.Errorf("Expected a conversion for 'Dollar conversion', got %T", conversion.Result)
	} else if result.Converted != 8000.0 {
		// The scenario overrides USD to 80 INR.
		t.Errorf("Dollar conversion: expected 8000.00, got %.2f", result.Converted)
	}

	netWorth := testutil.FindOutcome(outcomes, "Family net worth")
	if netWorth == nil {
		t.Fatal("Outcome 'Family net worth' not found in results")
	}
	if result, ok := netWorth.Result.(*networth.Result); !ok {
		t.Errorf("Expected a networth result for 'Family net worth', got %T", netWorth.Result)
	} else if result.NetWorth != 4500000.0 {
		t.Errorf("Family net worth: expected 4500000.00, got %.2f", result.NetWorth)
	}
}

// TestScenarioFileSettings checks that the runtime sections of the
// scenario file are honored.
func TestScenarioFileSettings(t *testing.T) {
	scn, err := scenario.LoadScenario("../test_scenario.yaml")
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}

	if scn.Logging.Level != "error" {
		t.Errorf("Expected logging level error, got %q", scn.Logging.Level)
	}
	if scn.Output.Format != "pretty" {
		t.Errorf("Expected output format pretty, got %q", scn.Output.Format)
	}
	if len(scn.Currency.Rates) != 1 {
		t.Errorf("Expected one rate override, got %d", len(scn.Currency.Rates))
	}
}

// TestScenarioJSONEncoding checks that outcomes survive a JSON round
// trip the way the server and the json output format emit them.
func TestScenarioJSONEncoding(t *testing.T) {
	outcomes := runTestScenario(t)

	data, err := json.Marshal(outcomes)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	encoded := string(data)
	for _, want := range []string{`"Home loan"`, `"emi"`, `"net_worth"`, `"recommended"`} {
		if !strings.Contains(encoded, want) {
			t.Errorf("Expected encoded outcomes to contain %s", want)
		}
	}
}
