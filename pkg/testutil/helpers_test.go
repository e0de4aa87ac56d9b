package testutil

import (
	"testing"

	"github.com/paisawise/paisawise/pkg/scenario"
)

func TestFindOutcome(t *testing.T) {
	outcomes := []scenario.Outcome{
		{Name: "Home loan", Type: "emi"},
		{Name: "Monthly investing", Type: "sip"},
		{Name: "Retirement plan", Type: "retirement"},
	}

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
		expectType  string
	}{
		{
			name:        "Find first outcome",
			searchName:  "Home loan",
			expectFound: true,
			expectType:  "emi",
		},
		{
			name:        "Find last outcome",
			searchName:  "Retirement plan",
			expectFound: true,
			expectType:  "retirement",
		},
		{
			name:       "Search for non-existent outcome",
			searchName: "Non-existent",
		},
		{
			name:       "Case sensitive search",
			searchName: "home loan",
		},
		{
			name:       "Partial name match",
			searchName: "Home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindOutcome(outcomes, tt.searchName)

			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindOutcome() expected nil for %q but got %q", tt.searchName, result.Name)
				}
				return
			}
			if result == nil {
				t.Fatalf("FindOutcome() expected to find %q but got nil", tt.searchName)
			}
			if result.Type != tt.expectType {
				t.Errorf("FindOutcome() returned type %q, expected %q", result.Type, tt.expectType)
			}
		})
	}
}

func TestFindOutcomeEmpty(t *testing.T) {
	if result := FindOutcome(nil, "anything"); result != nil {
		t.Errorf("FindOutcome() with nil outcomes should return nil, got %v", result)
	}
	if result := FindOutcome([]scenario.Outcome{}, "anything"); result != nil {
		t.Errorf("FindOutcome() with empty outcomes should return nil, got %v", result)
	}
}

func TestFindOutcomeReturnsPointer(t *testing.T) {
	outcomes := []scenario.Outcome{{Name: "Plan", Type: "sip"}}

	found := FindOutcome(outcomes, "Plan")
	if found == nil {
		t.Fatal("FindOutcome() returned nil")
	}
	if &outcomes[0] != found {
		t.Error("FindOutcome() should return a pointer to the original element")
	}

	found.Warnings = append(found.Warnings, "test")
	if len(outcomes[0].Warnings) != 1 {
		t.Error("modifying through the returned pointer should modify the original")
	}
}

func TestWithinRupee(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "identical", a: 100.00, b: 100.00, want: true},
		{name: "paise apart", a: 100.00, b: 100.37, want: true},
		{name: "exactly one rupee", a: 100.00, b: 101.00, want: true},
		{name: "beyond one rupee", a: 100.00, b: 101.01, want: false},
		{name: "negative values", a: -500.25, b: -500.75, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinRupee(tt.a, tt.b); got != tt.want {
				t.Errorf("WithinRupee(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
