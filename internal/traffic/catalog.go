package traffic

import "github.com/shopspring/decimal"

// CategoryInfo describes one rule table entry. Fines holds one entry per
// sub-selection, keyed by its value, or a single entry keyed "" for flat
// categories.
type CategoryInfo struct {
	Category    Category
	Label       string
	SubSelector string
	Fines       map[string]decimal.Decimal
}

// JurisdictionInfo describes one jurisdiction.
type JurisdictionInfo struct {
	Code       Jurisdiction
	Name       string
	Multiplier decimal.Decimal
}

// Categories lists the rule table in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		info := CategoryInfo{
			Category:    c,
			Label:       rules[c].label,
			SubSelector: SubSelectorName(c),
			Fines:       make(map[string]decimal.Decimal),
		}
		switch c {
		case Speeding:
			for b, fine := range speedingFines {
				info.Fines[string(b)] = fine
			}
		case DrunkDriving:
			for o, fine := range drunkDrivingFines {
				info.Fines[string(o)] = fine
			}
		default:
			fine, _ := rules[c].resolve(Input{})
			info.Fines[""] = fine
		}
		out = append(out, info)
	}
	return out
}

// Jurisdictions lists every jurisdiction in display order.
func Jurisdictions() []JurisdictionInfo {
	out := make([]JurisdictionInfo, 0, len(jurisdictionOrder))
	for _, code := range jurisdictionOrder {
		j := jurisdictions[code]
		out = append(out, JurisdictionInfo{Code: code, Name: j.name, Multiplier: j.multiplier})
	}
	return out
}

// SpeedBrackets lists the speeding brackets in ascending order.
func SpeedBrackets() []SpeedBracket {
	return []SpeedBracket{Over1To10, Over11To20, Over21Plus}
}

// Offenses lists the drunk-driving offense ordinals in ascending order.
func Offenses() []Offense {
	return []Offense{FirstOffense, SecondOffense, ThirdOffense}
}
