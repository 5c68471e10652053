// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/penalty-estimator/internal/tax"
	"github.com/iwvelando/penalty-estimator/internal/traffic"
	"github.com/iwvelando/penalty-estimator/pkg/datetime"
	"github.com/iwvelando/penalty-estimator/pkg/numparse"
)

// CaseValidator checks configured cases for values that will evaluate
// surprisingly. It only warns; evaluation still runs.
type CaseValidator struct {
	ZeroBaseWithoutSubSelector bool
	Traffic                    []TrafficCaseInfo
	Tax                        []TaxCaseInfo
}

type TrafficCaseInfo struct {
	Name         string
	Active       bool
	Jurisdiction string
	Category     string
	SpeedBracket string
	Offense      string
}

type TaxCaseInfo struct {
	Name        string
	Active      bool
	PenaltyType string
	TaxAmount   string
	Months      string
	DueDate     string
	SettledDate string
}

// ValidateTrafficCase returns warnings for one traffic case.
func ValidateTrafficCase(tc TrafficCaseInfo, zeroBaseWithoutSubSelector bool) []string {
	var warnings []string

	code := strings.ToUpper(strings.TrimSpace(tc.Jurisdiction))
	if code != "" && !traffic.KnownJurisdiction(traffic.Jurisdiction(code)) {
		warnings = append(warnings, fmt.Sprintf("Traffic case '%s' jurisdiction '%s' is not recognised - multiplier 1.0 will be used",
			tc.Name, tc.Jurisdiction))
	}

	category := traffic.Category(strings.TrimSpace(tc.Category))
	missing := (category == traffic.Speeding && strings.TrimSpace(tc.SpeedBracket) == "") ||
		(category == traffic.DrunkDriving && strings.TrimSpace(tc.Offense) == "")
	if missing {
		outcome := "will not be computed"
		if zeroBaseWithoutSubSelector {
			outcome = "will use a base fine of 0"
		}
		warnings = append(warnings, fmt.Sprintf("Traffic case '%s' has no %s - it %s",
			tc.Name, traffic.SubSelectorName(category), outcome))
	}

	return warnings
}

// ValidateTaxCase returns warnings for one tax case.
func ValidateTaxCase(tc TaxCaseInfo) []string {
	var warnings []string

	if amount, err := numparse.Amount(tc.TaxAmount); err == nil && amount.IsNegative() {
		warnings = append(warnings, fmt.Sprintf("Tax case '%s' has a negative amount (%s) - the penalty will be negative",
			tc.Name, tc.TaxAmount))
	}

	months := strings.TrimSpace(tc.Months)
	if months != "" && numparse.Months(months) < 0 {
		warnings = append(warnings, fmt.Sprintf("Tax case '%s' has negative months (%s)", tc.Name, months))
	}

	penaltyType := tax.PenaltyType(strings.TrimSpace(tc.PenaltyType))
	hasDates := tc.DueDate != "" || tc.SettledDate != ""
	if penaltyType == tax.InaccurateIncomeReporting && (months != "" || hasDates) {
		warnings = append(warnings, fmt.Sprintf("Tax case '%s' gives months for %s - they are ignored",
			tc.Name, penaltyType))
	}

	if months != "" && hasDates {
		warnings = append(warnings, fmt.Sprintf("Tax case '%s' gives both months and dates - months take precedence", tc.Name))
	}

	if tc.DueDate != "" && tc.SettledDate != "" {
		before, err := datetime.DateBeforeDate(tc.SettledDate, tc.DueDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Tax case '%s' has an unreadable date: %v", tc.Name, err))
		} else if before {
			warnings = append(warnings, fmt.Sprintf("Tax case '%s' was settled before it was due (%s < %s) - months will be 0",
				tc.Name, tc.SettledDate, tc.DueDate))
		}
	} else if hasDates && months == "" {
		warnings = append(warnings, fmt.Sprintf("Tax case '%s' needs both dueDate and settledDate - months will be 0", tc.Name))
	}

	return warnings
}

// ValidateAll validates every active case and returns warnings
func (cv *CaseValidator) ValidateAll() []string {
	var warnings []string

	seen := make(map[string]bool)
	checkName := func(kind, name string) {
		key := kind + "\x00" + name
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("Duplicate %s case name '%s'", kind, name))
		}
		seen[key] = true
	}

	for _, tc := range cv.Traffic {
		if !tc.Active {
			continue
		}
		checkName("traffic", tc.Name)
		warnings = append(warnings, ValidateTrafficCase(tc, cv.ZeroBaseWithoutSubSelector)...)
	}

	for _, tc := range cv.Tax {
		if !tc.Active {
			continue
		}
		checkName("tax", tc.Name)
		warnings = append(warnings, ValidateTaxCase(tc)...)
	}

	return warnings
}
