package tax

import "github.com/shopspring/decimal"

// TypeInfo describes one penalty type. Cap is nil for uncapped types and
// FlatRate is nil for month-based types.
type TypeInfo struct {
	Type        PenaltyType
	Label       string
	Section     string
	AmountLabel string
	UsesMonths  bool
	MonthlyRate *decimal.Decimal
	Cap         *decimal.Decimal
	FlatRate    *decimal.Decimal
}

// Types lists the penalty types in display order.
func Types() []TypeInfo {
	out := make([]TypeInfo, 0, len(typeOrder))
	for _, t := range typeOrder {
		m := models[t]
		info := TypeInfo{
			Type:        t,
			Label:       m.label,
			Section:     m.section,
			AmountLabel: m.amountLabel,
			UsesMonths:  !m.flat,
		}
		if m.flat {
			rate := m.flatRate
			info.FlatRate = &rate
		} else {
			rate := m.monthly
			info.MonthlyRate = &rate
		}
		if m.hasCap {
			c := m.cap
			info.Cap = &c
		}
		out = append(out, info)
	}
	return out
}

// Entities lists the filer types, default first.
func Entities() []Entity {
	return []Entity{Individual, Business}
}
