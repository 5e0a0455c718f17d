package calculation

import (
	"testing"

	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_PreservesOrder(t *testing.T) {
	values := []decimal.Decimal{d("0.2"), d("0"), d("0.5"), d("0.1")}
	sweep, err := Sweep(exampleScenario(), params(1, "0.03", "0.25"), "savings_rate", values)
	require.NoError(t, err)
	require.Len(t, sweep.Points, len(values))
	assert.Equal(t, "Graduate", sweep.ScenarioName)
	assert.Equal(t, "savings_rate", sweep.Parameter)

	for i, p := range sweep.Points {
		assert.True(t, values[i].Equal(p.Value))
	}
	assertDecimal(t, "9240", sweep.Points[0].Summary.FinalNetWorth)
	assertDecimal(t, "6300", sweep.Points[1].Summary.FinalNetWorth)
}

func TestSweep_RunParameters(t *testing.T) {
	sweep, err := Sweep(exampleScenario(), params(1, "0.03", "0.25"), "tax_rate", []decimal.Decimal{d("0"), d("0.25")})
	require.NoError(t, err)
	assertDecimal(t, "0", sweep.Points[0].Summary.TotalTaxes)
	assertDecimal(t, "15000", sweep.Points[1].Summary.TotalTaxes)
}

func TestSweep_LeavesScenarioUntouched(t *testing.T) {
	s := exampleScenario()
	values, err := SweepRange(d("0"), d("0.1"), d("0.02"), 0)
	require.NoError(t, err)
	_, err = Sweep(s, params(5, "0.03", "0.25"), "investment_return_rate", values)
	require.NoError(t, err)
	assertDecimal(t, "0.07", s.InvestmentReturnRate)
}

func TestSweep_Errors(t *testing.T) {
	_, err := Sweep(exampleScenario(), params(5, "0.03", "0.25"), "hair_colour", []decimal.Decimal{d("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)

	_, err = Sweep(exampleScenario(), params(5, "0.03", "0.25"), "savings_rate", []decimal.Decimal{d("0.1"), d("1.5")})
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	assert.Contains(t, err.Error(), "savings_rate=1.5")

	_, err = Sweep(exampleScenario(), params(5, "0.03", "0.25"), "savings_rate", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestSweepRange(t *testing.T) {
	values, err := SweepRange(d("0.01"), d("0.05"), d("0.01"), 0)
	require.NoError(t, err)
	require.Len(t, values, 5)
	assertDecimal(t, "0.05", values[4])

	_, err = SweepRange(d("1"), d("0"), d("0.1"), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	_, err = SweepRange(d("0"), d("1"), d("0"), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestSweepRangeLimit(t *testing.T) {
	values, err := SweepRange(d("0"), d("1"), d("0.25"), 5)
	require.NoError(t, err)
	assert.Len(t, values, 5, "a range of exactly the limit is allowed")

	_, err = SweepRange(d("0"), d("1"), d("0.2"), 5)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)

	values, err = SweepRange(d("0"), d("1"), d("0.000001"), 100)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	assert.Nil(t, values)
}

func TestSweepManyValuesBounded(t *testing.T) {
	values := make([]decimal.Decimal, 3*sweepConcurrency+1)
	for i := range values {
		values[i] = decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(100))
	}
	sweep, err := Sweep(exampleScenario(), params(2, "0.03", "0.25"), "savings_rate", values)
	require.NoError(t, err)
	require.Len(t, sweep.Points, len(values))
	for i, p := range sweep.Points {
		assert.True(t, values[i].Equal(p.Value), "point %d", i)
	}
}

func TestSweepParametersSorted(t *testing.T) {
	assert.Equal(t, []string{
		"inflation_rate",
		"investment_return_rate",
		"salary_growth_rate",
		"savings_rate",
		"tax_rate",
	}, SweepParameters())
}
