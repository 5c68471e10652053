package numparse

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Integer", "100000", "100000", false},
		{"Decimal", "1234.56", "1234.56", false},
		{"Whitespace", "  50000 ", "50000", false},
		{"Grouping commas", "1,00,000", "100000", false},
		{"Negative passes through", "-500", "-500", false},
		{"Exponent", "1e3", "1000", false},
		{"Empty", "", "", true},
		{"Letters", "abc", "", true},
		{"NaN", "NaN", "", true},
		{"Infinity", "Inf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Amount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Amount(%q) expected error, got %s", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Amount(%q) unexpected error: %v", tt.input, err)
			}
			if !result.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("Amount(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAmountEmptyError(t *testing.T) {
	_, err := Amount("   ")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestMonths(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"Integer", "20", 20},
		{"Whitespace", " 3 ", 3},
		{"Empty", "", 0},
		{"Letters", "soon", 0},
		{"Fraction truncates", "3.7", 3},
		{"Negative", "-2", -2},
		{"Huge", "1e300", 0},
		{"Negative fraction truncates toward zero", "-3.7", -3},
		{"Trailing letters", "3abc", 0},
		{"Largest int32", "2147483647", 2147483647},
		{"Largest int32 with fraction", "2147483647.9", 2147483647},
		{"Smallest int32", "-2147483648", -2147483648},
		{"Integer past int32", "2147483648", 0},
		{"Integer far past int32", "3000000000", 0},
		{"Decimal far past int32", "3000000000.0", 0},
		{"Integer below int32", "-3000000000", 0},
		{"Integer past int64", "99999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Months(tt.input); got != tt.expected {
				t.Errorf("Months(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
