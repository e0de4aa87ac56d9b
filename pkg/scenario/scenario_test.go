package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write scenario file: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
calculations:
  - name: Home loan
    type: emi
    params:
      principal: 3500000
      annual_rate: 8.5
      term_months: 240
  - type: sip
    params:
      monthly: 15000
      annual_rate: 12
      years: 15
`)

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}

	if len(scenario.Calculations) != 2 {
		t.Fatalf("expected 2 calculations, got %d", len(scenario.Calculations))
	}

	first := scenario.Calculations[0]
	if first.Name != "Home loan" || first.Type != "emi" {
		t.Errorf("first calculation = %+v", first)
	}
	if first.Params["principal"] != 3500000 {
		t.Errorf("principal param = %v (%T)", first.Params["principal"], first.Params["principal"])
	}

	second := scenario.Calculations[1]
	if got := second.DisplayName(1); got != "sip #2" {
		t.Errorf("DisplayName() = %q, want %q", got, "sip #2")
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing scenario file")
	}
}

func TestLoadScenarioEmpty(t *testing.T) {
	path := writeScenario(t, "calculations: []\n")
	if _, err := LoadScenario(path); err == nil {
		t.Error("expected error for scenario without calculations")
	}
}

func TestLoadScenarioMissingType(t *testing.T) {
	path := writeScenario(t, `
calculations:
  - name: Nameless
    params:
      monthly: 5000
`)
	_, err := LoadScenario(path)
	if err == nil {
		t.Fatal("expected error for calculation without a type")
	}
	if !strings.Contains(err.Error(), "Nameless") {
		t.Errorf("error should name the calculation: %v", err)
	}
}
