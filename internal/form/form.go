// Package form holds the text selections a user interface collects and turns
// them into evaluator inputs. It keeps presentation state away from the pure
// evaluators.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/internal/tax"
	"github.com/iwvelando/penalty-estimator/internal/traffic"
	"github.com/iwvelando/penalty-estimator/pkg/numparse"
)

// TrafficForm is the traffic calculator's field state.
type TrafficForm struct {
	Jurisdiction  string `json:"jurisdiction" yaml:"jurisdiction"`
	Category      string `json:"category" yaml:"category"`
	SpeedBracket  string `json:"speedBracket" yaml:"speedBracket"`
	Offense       string `json:"offense" yaml:"offense"`
	RepeatOffense bool   `json:"repeatOffense" yaml:"repeatOffense"`
}

// NewTrafficForm returns a form holding the defaults.
func NewTrafficForm() TrafficForm {
	var f TrafficForm
	f.Reset()
	return f
}

// Reset restores every field to its default.
func (f *TrafficForm) Reset() {
	*f = TrafficForm{Offense: string(traffic.FirstOffense)}
}

// FillDefaults sets empty fields that have a default, leaving the rest alone.
func (f *TrafficForm) FillDefaults() {
	if strings.TrimSpace(f.Offense) == "" {
		f.Offense = NewTrafficForm().Offense
	}
}

// Input converts the form into a traffic.Input.
func (f TrafficForm) Input() (traffic.Input, error) {
	jurisdiction := strings.ToUpper(strings.TrimSpace(f.Jurisdiction))
	if jurisdiction == "" {
		return traffic.Input{}, fmt.Errorf("jurisdiction not selected: %w", penalty.ErrIncompleteInput)
	}
	if strings.TrimSpace(f.Category) == "" {
		return traffic.Input{}, fmt.Errorf("violation category not selected: %w", penalty.ErrIncompleteInput)
	}
	category, err := traffic.ParseCategory(strings.TrimSpace(f.Category))
	if err != nil {
		return traffic.Input{}, err
	}
	speed, err := traffic.ParseSpeedBracket(strings.TrimSpace(f.SpeedBracket))
	if err != nil {
		return traffic.Input{}, err
	}
	offense, err := traffic.ParseOffense(strings.TrimSpace(f.Offense))
	if err != nil {
		return traffic.Input{}, err
	}

	return traffic.Input{
		Jurisdiction:  traffic.Jurisdiction(jurisdiction),
		Category:      category,
		Speed:         speed,
		Offense:       offense,
		RepeatOffense: f.RepeatOffense,
	}, nil
}

// Evaluate converts and evaluates the form.
func (f TrafficForm) Evaluate(opts traffic.Options) (penalty.Result, error) {
	in, err := f.Input()
	if err != nil {
		return penalty.Result{}, err
	}
	return traffic.EvaluateWithOptions(in, opts)
}

// TaxForm is the tax calculator's field state. TaxAmount and Months hold the
// raw text the user typed.
type TaxForm struct {
	PenaltyType string `json:"penaltyType" yaml:"penaltyType"`
	TaxAmount   string `json:"taxAmount" yaml:"taxAmount"`
	Months      string `json:"months" yaml:"months"`
	EntityType  string `json:"entityType" yaml:"entityType"`
}

// NewTaxForm returns a form holding the defaults.
func NewTaxForm() TaxForm {
	var f TaxForm
	f.Reset()
	return f
}

// Reset restores every field to its default.
func (f *TaxForm) Reset() {
	*f = TaxForm{EntityType: string(tax.Individual)}
}

// FillDefaults sets empty fields that have a default, leaving the rest alone.
func (f *TaxForm) FillDefaults() {
	if strings.TrimSpace(f.EntityType) == "" {
		f.EntityType = NewTaxForm().EntityType
	}
}

// AmountLabel names the amount field for the selected penalty type.
func (f TaxForm) AmountLabel() string {
	return tax.AmountLabel(tax.PenaltyType(f.PenaltyType))
}

// ShowMonths reports whether the months field is relevant.
func (f TaxForm) ShowMonths() bool {
	return tax.UsesMonths(tax.PenaltyType(f.PenaltyType))
}

// Input converts the form into a tax.Input. A missing or unparsable amount
// is an error; missing or unparsable months count as 0.
func (f TaxForm) Input() (tax.Input, error) {
	if strings.TrimSpace(f.PenaltyType) == "" {
		return tax.Input{}, fmt.Errorf("penalty type not selected: %w", penalty.ErrIncompleteInput)
	}
	penaltyType, err := tax.ParsePenaltyType(strings.TrimSpace(f.PenaltyType))
	if err != nil {
		return tax.Input{}, err
	}
	entity, err := tax.ParseEntity(strings.ToLower(strings.TrimSpace(f.EntityType)))
	if err != nil {
		return tax.Input{}, err
	}

	amount, err := numparse.Amount(f.TaxAmount)
	if err != nil {
		if errors.Is(err, numparse.ErrEmpty) {
			return tax.Input{}, fmt.Errorf("tax amount not entered: %w", penalty.ErrIncompleteInput)
		}
		return tax.Input{}, fmt.Errorf("tax amount %q: %w", f.TaxAmount, penalty.ErrUnparsableNumber)
	}

	return tax.Input{
		Type:   penaltyType,
		Amount: amount,
		Months: numparse.Months(f.Months),
		Entity: entity,
	}, nil
}

// Evaluate converts and evaluates the form.
func (f TaxForm) Evaluate() (penalty.Result, error) {
	in, err := f.Input()
	if err != nil {
		return penalty.Result{}, err
	}
	return tax.Evaluate(in)
}
