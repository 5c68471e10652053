package traffic

import (
	"testing"

	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected int64
	}{
		{
			name:     "Delhi red light",
			input:    Input{Jurisdiction: "DL", Category: RedLight},
			expected: 6000,
		},
		{
			name:     "Delhi speeding 21+ repeat offense",
			input:    Input{Jurisdiction: "DL", Category: Speeding, Speed: Over21Plus, RepeatOffense: true},
			expected: 9000,
		},
		{
			name:     "Uttar Pradesh third drunk driving offense",
			input:    Input{Jurisdiction: "UP", Category: DrunkDriving, Offense: ThirdOffense},
			expected: 24000,
		},
		{
			name:     "Maharashtra no helmet",
			input:    Input{Jurisdiction: "MH", Category: NoHelmet},
			expected: 1100,
		},
		{
			name:     "Tamil Nadu speeding 11-20 repeat",
			input:    Input{Jurisdiction: "TN", Category: Speeding, Speed: Over11To20, RepeatOffense: true},
			expected: 2700,
		},
		{
			name:     "Unknown jurisdiction uses 1.0",
			input:    Input{Jurisdiction: "ZZ", Category: Pollution},
			expected: 10000,
		},
		{
			name:     "Sub-selector ignored for flat category",
			input:    Input{Jurisdiction: "KA", Category: PhoneUse, Speed: Over1To10, Offense: ThirdOffense},
			expected: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Amount)
		})
	}
}

func TestEvaluateEveryCategoryResolves(t *testing.T) {
	for _, info := range Categories() {
		in := Input{Jurisdiction: "KA", Category: info.Category, Speed: Over1To10, Offense: FirstOffense}
		result, err := Evaluate(in)
		require.NoError(t, err, info.Category)
		assert.True(t, result.Base.IsPositive(), "category %s resolved to a non-positive base", info.Category)
	}
	assert.Len(t, Categories(), 11)
}

func TestEvaluateIncompleteInput(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"Missing jurisdiction", Input{Category: RedLight}},
		{"Missing category", Input{Jurisdiction: "DL"}},
		{"Unknown category", Input{Jurisdiction: "DL", Category: "parking"}},
		{"Speeding without bracket", Input{Jurisdiction: "DL", Category: Speeding}},
		{"Drunk driving without offense", Input{Jurisdiction: "DL", Category: DrunkDriving}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			assert.ErrorIs(t, err, penalty.ErrIncompleteInput)
		})
	}
}

func TestEvaluateZeroBaseWithoutSubSelector(t *testing.T) {
	opts := Options{ZeroBaseWithoutSubSelector: true}

	for _, c := range []Category{Speeding, DrunkDriving} {
		result, err := EvaluateWithOptions(Input{Jurisdiction: "DL", Category: c, RepeatOffense: true}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Amount)
		assert.True(t, result.Base.IsZero())
	}

	_, err := EvaluateWithOptions(Input{Category: Speeding}, opts)
	assert.ErrorIs(t, err, penalty.ErrIncompleteInput)
}

func TestRepeatOffenseAppliedAfterJurisdiction(t *testing.T) {
	result, err := Evaluate(Input{Jurisdiction: "RJ", Category: NoSeatbelt, RepeatOffense: true})
	require.NoError(t, err)

	require.Len(t, result.Steps, 2)
	assert.Equal(t, "jurisdiction RJ", result.Steps[0].Name)
	assert.True(t, result.Steps[0].Factor.Equal(decimal.RequireFromString("0.8")))
	assert.Equal(t, "repeat offense", result.Steps[1].Name)
	assert.True(t, result.Steps[1].Applied)
	assert.True(t, result.Unrounded.Equal(decimal.NewFromInt(1200)))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	in := Input{Jurisdiction: "WB", Category: Speeding, Speed: Over11To20, RepeatOffense: true}
	first, err := Evaluate(in)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Evaluate(in)
		require.NoError(t, err)
		assert.Equal(t, first.Amount, again.Amount)
	}
}

func TestJurisdictionMultipliersInRange(t *testing.T) {
	lo := decimal.RequireFromString("0.8")
	hi := decimal.RequireFromString("1.2")

	all := Jurisdictions()
	assert.Len(t, all, 15)
	for _, j := range all {
		assert.True(t, mathutil.InRange(j.Multiplier, lo, hi), "%s out of range: %s", j.Code, j.Multiplier)
		assert.True(t, KnownJurisdiction(j.Code))
		assert.NotEmpty(t, j.Name)
	}

	assert.False(t, KnownJurisdiction("XX"))
	assert.True(t, Multiplier("XX").Equal(decimal.NewFromInt(1)))
	assert.True(t, Multiplier("").Equal(decimal.NewFromInt(1)))
}

func TestParse(t *testing.T) {
	c, err := ParseCategory("wrong-side")
	require.NoError(t, err)
	assert.Equal(t, WrongSide, c)

	_, err = ParseCategory("wrongSide")
	assert.ErrorIs(t, err, penalty.ErrIncompleteInput)

	b, err := ParseSpeedBracket("21+")
	require.NoError(t, err)
	assert.Equal(t, Over21Plus, b)

	b, err = ParseSpeedBracket("")
	require.NoError(t, err)
	assert.Equal(t, SpeedBracket(""), b)

	_, err = ParseSpeedBracket("30")
	assert.Error(t, err)

	o, err := ParseOffense("second")
	require.NoError(t, err)
	assert.Equal(t, SecondOffense, o)

	_, err = ParseOffense("fourth")
	assert.Error(t, err)
}

func TestCategoriesCatalog(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, Speeding, cats[0].Category)
	assert.Equal(t, "speed bracket", cats[0].SubSelector)
	assert.Len(t, cats[0].Fines, 3)
	assert.True(t, cats[0].Fines["21+"].Equal(decimal.NewFromInt(5000)))

	for _, info := range cats {
		if info.Category == DrunkDriving {
			assert.True(t, info.Fines["third"].Equal(decimal.NewFromInt(30000)))
		}
		if info.Category == RedLight {
			assert.True(t, info.Fines[""].Equal(decimal.NewFromInt(5000)))
			assert.Empty(t, info.SubSelector)
		}
	}

	assert.Equal(t, []SpeedBracket{Over1To10, Over11To20, Over21Plus}, SpeedBrackets())
	assert.Equal(t, []Offense{FirstOffense, SecondOffense, ThirdOffense}, Offenses())
}
