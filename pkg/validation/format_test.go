package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Valid pretty format", "pretty", false},
		{"Valid csv format", "csv", false},
		{"Invalid format", "json", true},
		{"Empty format", "", true},
		{"Case sensitive - uppercase", "PRETTY", true},
		{"Leading/trailing spaces", " pretty ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
			}
		})
	}
}

func TestValidateOutputFormatErrorMessage(t *testing.T) {
	err := ValidateOutputFormat("xml")
	if err == nil {
		t.Fatal("Expected error for format 'xml'")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("Error message should mention the rejected format: %s", err)
	}
}

func TestValidateGrouping(t *testing.T) {
	tests := []struct {
		name      string
		grouping  string
		expectErr bool
	}{
		{"Default", "", false},
		{"Indian", "indian", false},
		{"Western", "western", false},
		{"Unknown", "european", true},
		{"Uppercase", "INDIAN", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrouping(tt.grouping)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateGrouping(%s) error = %v, expectErr %v", tt.grouping, err, tt.expectErr)
			}
		})
	}
}
