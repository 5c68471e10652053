package tax

import (
	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// PenaltyType is an income-tax default.
type PenaltyType string

const (
	LateFiling                PenaltyType = "late-filing"
	LatePayment               PenaltyType = "late-payment"
	UnderpaymentAdvanceTax    PenaltyType = "underpayment-advance-tax"
	InaccurateIncomeReporting PenaltyType = "inaccurate-income-reporting"
	TDSDefault                PenaltyType = "tds-default"
)

// Entity is the kind of filer.
type Entity string

const (
	Individual Entity = "individual"
	Business   Entity = "business"
)

// rateModel describes how a penalty type accrues. Flat models ignore months;
// the others accrue Monthly per month, limited to Cap when HasCap is set.
type rateModel struct {
	label       string
	section     string
	amountLabel string
	flat        bool
	flatRate    decimal.Decimal
	monthly     decimal.Decimal
	hasCap      bool
	cap         decimal.Decimal
}

var monthly = mathutil.MustDecimal(constants.MonthlyAccrualRate)

var typeOrder = []PenaltyType{
	LateFiling, LatePayment, UnderpaymentAdvanceTax, InaccurateIncomeReporting, TDSDefault,
}

var models = map[PenaltyType]rateModel{
	LateFiling: {
		label:       "Late Filing",
		section:     "234A",
		amountLabel: "Tax Amount Due",
		monthly:     monthly,
		hasCap:      true,
		cap:         mathutil.MustDecimal("0.12"),
	},
	LatePayment: {
		label:       "Late Payment",
		section:     "234B",
		amountLabel: "Tax Amount Due",
		monthly:     monthly,
		hasCap:      true,
		cap:         mathutil.MustDecimal("0.36"),
	},
	UnderpaymentAdvanceTax: {
		label:       "Underpayment of Advance Tax",
		section:     "234C",
		amountLabel: "Tax Amount Due",
		monthly:     monthly,
	},
	InaccurateIncomeReporting: {
		label:       "Inaccurate Income Reporting",
		section:     "270A",
		amountLabel: "Tax Sought to be Evaded",
		flat:        true,
		flatRate:    mathutil.MustDecimal("0.50"),
	},
	TDSDefault: {
		label:       "TDS/TCS Default",
		section:     "",
		amountLabel: "TDS/TCS Amount",
		monthly:     monthly,
		hasCap:      true,
		cap:         mathutil.MustDecimal("0.36"),
	},
}

func (m rateModel) rate(months int) decimal.Decimal {
	if m.flat {
		return m.flatRate
	}
	r := m.monthly.Mul(decimal.NewFromInt(int64(months)))
	if m.hasCap {
		return mathutil.Cap(r, m.cap)
	}
	return r
}
