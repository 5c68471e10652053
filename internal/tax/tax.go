// Package tax estimates income-tax penalties as an accrual rate applied to
// the amount at issue, with a surcharge for business filers.
package tax

import (
	"fmt"

	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Disclaimer accompanies every tax estimate.
const Disclaimer = "This is an estimate based on the Income Tax Act of India. " +
	"Actual penalties may vary based on specific circumstances, Income Tax Department decisions, " +
	"and potential additional interest charges. For accurate assessment, consult a tax professional."

var businessMultiplier = mathutil.MustDecimal(constants.BusinessEntityMultiplier)

// Input is one tax penalty query. Amount may be negative; it is not
// clamped. Months is ignored by flat penalty types.
type Input struct {
	Type   PenaltyType
	Amount decimal.Decimal
	Months int
	Entity Entity
}

// Evaluate computes amount * accrual rate, scaled by 1.2 for businesses and
// rounded once.
func Evaluate(in Input) (penalty.Result, error) {
	m, ok := models[in.Type]
	if !ok {
		if in.Type == "" {
			return penalty.Result{}, fmt.Errorf("penalty type not selected: %w", penalty.ErrIncompleteInput)
		}
		return penalty.Result{}, fmt.Errorf("unknown penalty type %q: %w", in.Type, penalty.ErrIncompleteInput)
	}
	entity, err := ParseEntity(string(in.Entity))
	if err != nil {
		return penalty.Result{}, err
	}

	rate := m.rate(in.Months)
	return penalty.Apply(in.Amount,
		penalty.Always("accrual rate", rate),
		penalty.When("business entity", businessMultiplier, entity == Business),
	)
}

// AccrualRate returns the fractional rate for t after months, honouring the
// type's cap. Unknown types return zero.
func AccrualRate(t PenaltyType, months int) decimal.Decimal {
	m, ok := models[t]
	if !ok {
		return decimal.Zero
	}
	return m.rate(months)
}

// UsesMonths reports whether t accrues with elapsed months.
func UsesMonths(t PenaltyType) bool {
	m, ok := models[t]
	return ok && !m.flat
}

// AmountLabel names the amount field for t.
func AmountLabel(t PenaltyType) string {
	if m, ok := models[t]; ok {
		return m.amountLabel
	}
	return "Tax Amount Due"
}

// ParsePenaltyType converts text to a PenaltyType.
func ParsePenaltyType(s string) (PenaltyType, error) {
	t := PenaltyType(s)
	if _, ok := models[t]; !ok {
		return "", fmt.Errorf("unknown penalty type %q: %w", s, penalty.ErrIncompleteInput)
	}
	return t, nil
}

// ParseEntity converts text to an Entity. Empty text means Individual.
func ParseEntity(s string) (Entity, error) {
	switch Entity(s) {
	case "", Individual:
		return Individual, nil
	case Business:
		return Business, nil
	default:
		return "", fmt.Errorf("unknown entity type %q: %w", s, penalty.ErrIncompleteInput)
	}
}
