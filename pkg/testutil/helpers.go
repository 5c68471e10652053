// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/penalty-estimator/internal/estimate"
)

// FindEstimate finds an estimate by case name in the results slice.
// Returns a pointer to the estimate if found, nil otherwise.
func FindEstimate(results []estimate.Estimate, name string) *estimate.Estimate {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// Amounts maps case names to rounded amounts for every computable estimate.
func Amounts(results []estimate.Estimate) map[string]int64 {
	out := make(map[string]int64, len(results))
	for _, e := range results {
		if e.Computable() {
			out[e.Name] = e.Result.Amount
		}
	}
	return out
}
