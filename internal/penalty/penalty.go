// Package penalty holds the adjustment pipeline shared by the traffic and
// tax evaluators.
package penalty

import (
	"errors"
	"fmt"

	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var (
	// ErrIncompleteInput means a required selection is missing or unknown.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrUnparsableNumber means a numeric field did not parse to a finite
	// number, or the result is too large to express as a whole amount.
	ErrUnparsableNumber = errors.New("unparsable number")
)

// Step is one multiplicative adjustment in a pipeline.
type Step struct {
	Name    string
	Factor  decimal.Decimal
	Applied bool
}

// Result is the outcome of one evaluation. Unrounded keeps the exact
// pipeline value; Amount is rounded once to a whole currency unit.
type Result struct {
	Base      decimal.Decimal
	Steps     []Step
	Unrounded decimal.Decimal
	Amount    int64
}

// When builds a step that only applies if cond holds.
func When(name string, factor decimal.Decimal, cond bool) Step {
	return Step{Name: name, Factor: factor, Applied: cond}
}

// Always builds an unconditional step.
func Always(name string, factor decimal.Decimal) Step {
	return Step{Name: name, Factor: factor, Applied: true}
}

// Apply runs the steps over base in order and rounds at the end. A total
// that does not fit in an int64 once rounded is an error.
func Apply(base decimal.Decimal, steps ...Step) (Result, error) {
	total := base
	for _, step := range steps {
		if step.Applied {
			total = total.Mul(step.Factor)
		}
	}
	amount, ok := mathutil.RoundToUnit(total)
	if !ok {
		return Result{}, fmt.Errorf("amount %s is out of range: %w", total, ErrUnparsableNumber)
	}
	return Result{
		Base:      base,
		Steps:     steps,
		Unrounded: total,
		Amount:    amount,
	}, nil
}
