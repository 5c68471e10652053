// Package traffic estimates fines for traffic violations from a fixed rule
// table, a per-jurisdiction multiplier and a repeat-offense surcharge.
package traffic

import (
	"fmt"

	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Disclaimer accompanies every traffic estimate.
const Disclaimer = "This is an estimate based on the Motor Vehicles Act and state regulations. " +
	"Actual fines may vary based on local enforcement, court decisions, and specific circumstances of the violation."

var (
	repeatOffenseMultiplier = mathutil.MustDecimal(constants.RepeatOffenseMultiplier)
	defaultMultiplier       = mathutil.MustDecimal(constants.DefaultJurisdictionMultiplier)
)

// Input is one traffic fine query. Speed is only read for Speeding and
// Offense only for DrunkDriving.
type Input struct {
	Jurisdiction  Jurisdiction
	Category      Category
	Speed         SpeedBracket
	Offense       Offense
	RepeatOffense bool
}

// Options changes how incomplete sub-selections are handled.
type Options struct {
	// ZeroBaseWithoutSubSelector resolves a missing speed bracket or offense
	// ordinal to a base fine of 0 instead of declining to compute.
	ZeroBaseWithoutSubSelector bool
}

// Evaluate computes the fine for in.
func Evaluate(in Input) (penalty.Result, error) {
	return EvaluateWithOptions(in, Options{})
}

// EvaluateWithOptions computes the fine for in. The base fine is scaled by
// the jurisdiction multiplier, then by the repeat-offense multiplier, and
// rounded once.
func EvaluateWithOptions(in Input, opts Options) (penalty.Result, error) {
	if in.Jurisdiction == "" {
		return penalty.Result{}, fmt.Errorf("jurisdiction not selected: %w", penalty.ErrIncompleteInput)
	}
	r, ok := rules[in.Category]
	if !ok {
		return penalty.Result{}, fmt.Errorf("unknown violation category %q: %w", in.Category, penalty.ErrIncompleteInput)
	}

	base, ok := r.resolve(in)
	if !ok {
		if !opts.ZeroBaseWithoutSubSelector {
			return penalty.Result{}, fmt.Errorf("%s requires a %s: %w", in.Category, SubSelectorName(in.Category), penalty.ErrIncompleteInput)
		}
		base = decimal.Zero
	}

	return penalty.Apply(base,
		penalty.Always("jurisdiction "+string(in.Jurisdiction), Multiplier(in.Jurisdiction)),
		penalty.When("repeat offense", repeatOffenseMultiplier, in.RepeatOffense),
	)
}

// Multiplier returns the jurisdiction multiplier, or 1.0 for unknown codes.
func Multiplier(j Jurisdiction) decimal.Decimal {
	if info, ok := jurisdictions[j]; ok {
		return info.multiplier
	}
	return defaultMultiplier
}

// KnownJurisdiction reports whether j has its own multiplier.
func KnownJurisdiction(j Jurisdiction) bool {
	_, ok := jurisdictions[j]
	return ok
}

// SubSelectorName names the extra selection a category needs, or "" if none.
func SubSelectorName(c Category) string {
	switch c {
	case Speeding:
		return "speed bracket"
	case DrunkDriving:
		return "offense number"
	default:
		return ""
	}
}

// ParseCategory converts text to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := rules[c]; !ok {
		return "", fmt.Errorf("unknown violation category %q: %w", s, penalty.ErrIncompleteInput)
	}
	return c, nil
}

// ParseSpeedBracket converts text to a SpeedBracket. Empty text is allowed
// and yields the zero value.
func ParseSpeedBracket(s string) (SpeedBracket, error) {
	b := SpeedBracket(s)
	if _, ok := speedingFines[b]; !ok && s != "" {
		return "", fmt.Errorf("unknown speed bracket %q: %w", s, penalty.ErrIncompleteInput)
	}
	return b, nil
}

// ParseOffense converts text to an Offense. Empty text is allowed and yields
// the zero value.
func ParseOffense(s string) (Offense, error) {
	o := Offense(s)
	if _, ok := drunkDrivingFines[o]; !ok && s != "" {
		return "", fmt.Errorf("unknown offense number %q: %w", s, penalty.ErrIncompleteInput)
	}
	return o, nil
}
