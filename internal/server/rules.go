package server

import (
	"net/http"

	"github.com/iwvelando/penalty-estimator/internal/tax"
	"github.com/iwvelando/penalty-estimator/internal/traffic"
	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

type rulesResponse struct {
	Traffic trafficRules `json:"traffic"`
	Tax     taxRules     `json:"tax"`
}

type trafficRules struct {
	Categories              []categoryRule     `json:"categories"`
	Jurisdictions           []jurisdictionRule `json:"jurisdictions"`
	SpeedBrackets           []string           `json:"speedBrackets"`
	Offenses                []string           `json:"offenses"`
	RepeatOffenseMultiplier float64            `json:"repeatOffenseMultiplier"`
	Disclaimer              string             `json:"disclaimer"`
}

type categoryRule struct {
	Category    string           `json:"category"`
	Label       string           `json:"label"`
	SubSelector string           `json:"subSelector,omitempty"`
	Fines       map[string]int64 `json:"fines"`
}

type jurisdictionRule struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type taxRules struct {
	Types              []taxTypeRule `json:"types"`
	Entities           []string      `json:"entities"`
	BusinessMultiplier float64       `json:"businessMultiplier"`
	Disclaimer         string        `json:"disclaimer"`
}

type taxTypeRule struct {
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Section     string   `json:"section"`
	AmountLabel string   `json:"amountLabel"`
	UsesMonths  bool     `json:"usesMonths"`
	MonthlyRate *float64 `json:"monthlyRate,omitempty"`
	Cap         *float64 `json:"cap,omitempty"`
	FlatRate    *float64 `json:"flatRate,omitempty"`
}

func (h *handler) handleRules(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, buildRules())
}

func buildRules() rulesResponse {
	var resp rulesResponse

	for _, c := range traffic.Categories() {
		rule := categoryRule{
			Category:    string(c.Category),
			Label:       c.Label,
			SubSelector: c.SubSelector,
			Fines:       make(map[string]int64, len(c.Fines)),
		}
		for key, fine := range c.Fines {
			rule.Fines[key] = fine.IntPart()
		}
		resp.Traffic.Categories = append(resp.Traffic.Categories, rule)
	}
	for _, j := range traffic.Jurisdictions() {
		resp.Traffic.Jurisdictions = append(resp.Traffic.Jurisdictions, jurisdictionRule{
			Code:       string(j.Code),
			Name:       j.Name,
			Multiplier: j.Multiplier.InexactFloat64(),
		})
	}
	for _, b := range traffic.SpeedBrackets() {
		resp.Traffic.SpeedBrackets = append(resp.Traffic.SpeedBrackets, string(b))
	}
	for _, o := range traffic.Offenses() {
		resp.Traffic.Offenses = append(resp.Traffic.Offenses, string(o))
	}
	resp.Traffic.RepeatOffenseMultiplier = mathutil.MustDecimal(constants.RepeatOffenseMultiplier).InexactFloat64()
	resp.Traffic.Disclaimer = traffic.Disclaimer

	for _, t := range tax.Types() {
		resp.Tax.Types = append(resp.Tax.Types, taxTypeRule{
			Type:        string(t.Type),
			Label:       t.Label,
			Section:     t.Section,
			AmountLabel: t.AmountLabel,
			UsesMonths:  t.UsesMonths,
			MonthlyRate: floatPtr(t.MonthlyRate),
			Cap:         floatPtr(t.Cap),
			FlatRate:    floatPtr(t.FlatRate),
		})
	}
	for _, e := range tax.Entities() {
		resp.Tax.Entities = append(resp.Tax.Entities, string(e))
	}
	resp.Tax.BusinessMultiplier = mathutil.MustDecimal(constants.BusinessEntityMultiplier).InexactFloat64()
	resp.Tax.Disclaimer = tax.Disclaimer

	return resp
}

func floatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
