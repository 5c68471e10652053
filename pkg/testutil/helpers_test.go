package testutil

import (
	"testing"

	"github.com/iwvelando/penalty-estimator/internal/estimate"
	"github.com/iwvelando/penalty-estimator/internal/penalty"
)

func sampleResults() []estimate.Estimate {
	return []estimate.Estimate{
		{Name: "Case A", Domain: estimate.DomainTraffic, Result: &penalty.Result{Amount: 1000}},
		{Name: "Case B", Domain: estimate.DomainTax, Result: &penalty.Result{Amount: 2000}},
		{Name: "Case C", Domain: estimate.DomainTax, Reason: "incomplete input"},
	}
}

func TestFindEstimate(t *testing.T) {
	results := sampleResults()

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
	}{
		{"Find existing case A", "Case A", true},
		{"Find not computable case", "Case C", true},
		{"Missing case", "Case D", false},
		{"Case sensitive", "case a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindEstimate(results, tt.searchName)
			if (got != nil) != tt.expectFound {
				t.Fatalf("FindEstimate(%q) found = %v, expected %v", tt.searchName, got != nil, tt.expectFound)
			}
			if got != nil && got.Name != tt.searchName {
				t.Errorf("FindEstimate(%q) returned %q", tt.searchName, got.Name)
			}
		})
	}
}

func TestFindEstimateReturnsPointerIntoSlice(t *testing.T) {
	results := sampleResults()
	got := FindEstimate(results, "Case B")
	got.Reason = "changed"
	if results[1].Reason != "changed" {
		t.Error("expected pointer into the backing slice")
	}
}

func TestAmounts(t *testing.T) {
	got := Amounts(sampleResults())
	if len(got) != 2 {
		t.Fatalf("expected 2 amounts, got %d", len(got))
	}
	if got["Case A"] != 1000 || got["Case B"] != 2000 {
		t.Errorf("unexpected amounts %v", got)
	}
	if _, ok := got["Case C"]; ok {
		t.Error("not computable case should be left out")
	}
}
