// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/penalty-estimator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateGrouping checks if the digit grouping is supported. Empty means
// the default.
func ValidateGrouping(grouping string) error {
	switch grouping {
	case "", constants.GroupingIndian, constants.GroupingWestern:
		return nil
	}
	return fmt.Errorf("expected grouping of %s or %s, got %s",
		constants.GroupingIndian, constants.GroupingWestern, grouping)
}
