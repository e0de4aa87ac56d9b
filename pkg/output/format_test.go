package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/paisawise/paisawise/pkg/currency"
	"github.com/paisawise/paisawise/pkg/loan"
	"github.com/paisawise/paisawise/pkg/scenario"
	"github.com/paisawise/paisawise/pkg/swp"
)

// captureStdout runs fn while collecting everything written to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func loanOutcome(t *testing.T) scenario.Outcome {
	t.Helper()
	builder := loan.NewScheduleBuilder(nil)
	result, err := builder.Build(loan.Input{Principal: 120000, AnnualRate: 0, TermMonths: 12})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return scenario.Outcome{Name: "Zero-cost loan", Type: "emi", Result: result}
}

func TestPrettyFormat(t *testing.T) {
	outcome := loanOutcome(t)
	output := captureStdout(t, func() {
		PrettyFormat([]scenario.Outcome{outcome})
	})

	if !strings.Contains(output, "--- Results for Zero-cost loan (emi) ---") {
		t.Errorf("PrettyFormat missing outcome header:\n%s", output)
	}
	if !strings.Contains(output, "Monthly EMI") {
		t.Errorf("PrettyFormat missing EMI row:\n%s", output)
	}
	if !strings.Contains(output, "₹10,000.00") {
		t.Errorf("PrettyFormat missing formatted EMI value:\n%s", output)
	}
	if !strings.Contains(output, "Year | Payment") {
		t.Errorf("PrettyFormat missing yearly table header:\n%s", output)
	}
}

func TestPrettyFormatWarnings(t *testing.T) {
	outcome := loanOutcome(t)
	outcome.Warnings = []string{"rate looks optimistic"}

	output := captureStdout(t, func() {
		PrettyFormat([]scenario.Outcome{outcome})
	})

	if !strings.Contains(output, "note: rate looks optimistic") {
		t.Errorf("PrettyFormat missing warning line:\n%s", output)
	}
}

func TestCsvFormat(t *testing.T) {
	outcome := loanOutcome(t)
	output := captureStdout(t, func() {
		CsvFormat([]scenario.Outcome{outcome})
	})

	if !strings.Contains(output, `"calculation","type","metric","value"`) {
		t.Errorf("CsvFormat missing header:\n%s", output)
	}
	if !strings.Contains(output, `"Zero-cost loan","emi","Monthly EMI","10000.00"`) {
		t.Errorf("CsvFormat missing EMI record:\n%s", output)
	}
}

func TestJsonFormat(t *testing.T) {
	outcome := loanOutcome(t)
	output := captureStdout(t, func() {
		if err := JsonFormat([]scenario.Outcome{outcome}); err != nil {
			t.Errorf("JsonFormat() error = %v", err)
		}
	})

	var decoded []map[string]interface{}
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("JsonFormat produced invalid JSON: %v\n%s", err, output)
	}
	if len(decoded) != 1 || decoded[0]["type"] != "emi" {
		t.Errorf("unexpected JSON payload: %v", decoded)
	}
}

func TestRowsSWP(t *testing.T) {
	planner := swp.NewPlanner(nil)
	result, err := planner.Plan(swp.Input{Corpus: 1000000, Monthly: 5000, AnnualRate: 12})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	rows := Rows(scenario.Outcome{Name: "Pension", Type: "swp", Result: result})
	found := false
	for _, row := range rows {
		if row.Label == "Sustainable indefinitely" && row.Value == "yes" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected sustainable=yes row, got %+v", rows)
	}
}

func TestRowsConversion(t *testing.T) {
	conversion, err := currency.WithRate(100, "USD", "INR", 83.5)
	if err != nil {
		t.Fatalf("WithRate() error = %v", err)
	}

	rows := Rows(scenario.Outcome{Name: "Travel budget", Type: "currency", Result: conversion})
	joined := ""
	for _, row := range rows {
		joined += row.Label + "=" + row.Value + ";"
	}
	if !strings.Contains(joined, "From=100.00 USD") {
		t.Errorf("missing source row: %s", joined)
	}
	if !strings.Contains(joined, "Converted=8350.00 INR") {
		t.Errorf("missing converted row: %s", joined)
	}
}

func TestRowsUnknownResult(t *testing.T) {
	rows := Rows(scenario.Outcome{Name: "Mystery", Type: "unknown", Result: struct{ X int }{X: 42}})
	if len(rows) != 1 || rows[0].Label != "Result" {
		t.Errorf("expected fallback row, got %+v", rows)
	}
}
