package traffic

import (
	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Category is a traffic violation.
type Category string

const (
	Speeding     Category = "speeding"
	RedLight     Category = "red-light"
	NoHelmet     Category = "no-helmet"
	WrongSide    Category = "wrong-side"
	DrunkDriving Category = "drunk-driving"
	NoLicense    Category = "no-license"
	NoInsurance  Category = "no-insurance"
	PhoneUse     Category = "phone-use"
	NoSeatbelt   Category = "no-seatbelt"
	Overloading  Category = "overloading"
	Pollution    Category = "pollution"
)

// SpeedBracket is how far over the limit a speeding vehicle was, in km/h.
type SpeedBracket string

const (
	Over1To10  SpeedBracket = "1-10"
	Over11To20 SpeedBracket = "11-20"
	Over21Plus SpeedBracket = "21+"
)

// Offense is the ordinal of a drunk-driving offense.
type Offense string

const (
	FirstOffense  Offense = "first"
	SecondOffense Offense = "second"
	ThirdOffense  Offense = "third"
)

// baseResolver returns the base fine for an input, or false when a
// required sub-selection is missing.
type baseResolver func(in Input) (decimal.Decimal, bool)

type rule struct {
	label   string
	resolve baseResolver
}

var speedingFines = map[SpeedBracket]decimal.Decimal{
	Over1To10:  decimal.NewFromInt(1000),
	Over11To20: decimal.NewFromInt(2000),
	Over21Plus: decimal.NewFromInt(5000),
}

var drunkDrivingFines = map[Offense]decimal.Decimal{
	FirstOffense:  decimal.NewFromInt(10000),
	SecondOffense: decimal.NewFromInt(15000),
	ThirdOffense:  decimal.NewFromInt(30000),
}

var categoryOrder = []Category{
	Speeding, RedLight, NoHelmet, WrongSide, DrunkDriving, NoLicense,
	NoInsurance, PhoneUse, NoSeatbelt, Overloading, Pollution,
}

var rules = map[Category]rule{
	Speeding: {"Speeding", func(in Input) (decimal.Decimal, bool) {
		fine, ok := speedingFines[in.Speed]
		return fine, ok
	}},
	RedLight:  {"Running Red Light/Signal", flat(5000)},
	NoHelmet:  {"Riding Without Helmet", flat(1000)},
	WrongSide: {"Driving on Wrong Side", flat(5000)},
	DrunkDriving: {"Drunk Driving", func(in Input) (decimal.Decimal, bool) {
		fine, ok := drunkDrivingFines[in.Offense]
		return fine, ok
	}},
	NoLicense:   {"Driving Without License", flat(5000)},
	NoInsurance: {"No Insurance", flat(2000)},
	PhoneUse:    {"Using Mobile While Driving", flat(5000)},
	NoSeatbelt:  {"Not Wearing Seatbelt", flat(1000)},
	Overloading: {"Vehicle Overloading", flat(2000)},
	Pollution:   {"Pollution Norms Violation", flat(10000)},
}

func flat(amount int64) baseResolver {
	fine := decimal.NewFromInt(amount)
	return func(Input) (decimal.Decimal, bool) { return fine, true }
}

// Jurisdiction is a state or union territory code.
type Jurisdiction string

type jurisdictionInfo struct {
	name       string
	multiplier decimal.Decimal
}

var jurisdictionOrder = []Jurisdiction{
	"DL", "MH", "KA", "TN", "UP", "WB", "GJ", "RJ", "HR", "TS", "AP", "KL", "PB", "BR", "OR",
}

var jurisdictions = map[Jurisdiction]jurisdictionInfo{
	"DL": {"Delhi", mathutil.MustDecimal("1.2")},
	"MH": {"Maharashtra", mathutil.MustDecimal("1.1")},
	"KA": {"Karnataka", mathutil.MustDecimal("1.0")},
	"TN": {"Tamil Nadu", mathutil.MustDecimal("0.9")},
	"UP": {"Uttar Pradesh", mathutil.MustDecimal("0.8")},
	"WB": {"West Bengal", mathutil.MustDecimal("0.9")},
	"GJ": {"Gujarat", mathutil.MustDecimal("1.0")},
	"RJ": {"Rajasthan", mathutil.MustDecimal("0.8")},
	"HR": {"Haryana", mathutil.MustDecimal("1.0")},
	"TS": {"Telangana", mathutil.MustDecimal("0.9")},
	"AP": {"Andhra Pradesh", mathutil.MustDecimal("0.9")},
	"KL": {"Kerala", mathutil.MustDecimal("1.0")},
	"PB": {"Punjab", mathutil.MustDecimal("0.9")},
	"BR": {"Bihar", mathutil.MustDecimal("0.8")},
	"OR": {"Odisha", mathutil.MustDecimal("0.8")},
}
