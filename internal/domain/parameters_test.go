package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	assert.Equal(t, 30, p.Years)
	assert.True(t, p.InflationRate.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, p.TaxRate.Equal(decimal.RequireFromString("0.25")))
	assert.NoError(t, p.Validate())
}

func TestParametersValidate(t *testing.T) {
	cases := map[string]func(*SimulationParameters){
		"zero years":         func(p *SimulationParameters) { p.Years = 0 },
		"negative inflation": func(p *SimulationParameters) { p.InflationRate = decimal.RequireFromString("-0.01") },
		"tax above one":      func(p *SimulationParameters) { p.TaxRate = decimal.RequireFromString("1.5") },
		"negative tax":       func(p *SimulationParameters) { p.TaxRate = decimal.RequireFromString("-0.1") },
		"unknown policy":     func(p *SimulationParameters) { p.Policies.SalaryGrowth = "sideways" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParameters()
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidScenario)
		})
	}
}

func TestPoliciesWithDefaults(t *testing.T) {
	p := Policies{}.WithDefaults()
	assert.Equal(t, SalaryGrowthFromStart, p.SalaryGrowth)
	assert.Equal(t, GrowthOnOpeningBalance, p.InvestmentGrowth)
	assert.Equal(t, DebtOriginalBalance, p.DebtAmortization)

	set := Policies{SalaryGrowth: SalaryGrowthRebased, DebtAmortization: DebtCurrentBalance}.WithDefaults()
	assert.Equal(t, SalaryGrowthRebased, set.SalaryGrowth)
	assert.Equal(t, GrowthOnOpeningBalance, set.InvestmentGrowth)
	assert.Equal(t, DebtCurrentBalance, set.DebtAmortization)
}

func TestPoliciesValidate(t *testing.T) {
	assert.NoError(t, Policies{}.Validate())
	assert.NoError(t, Policies{InvestmentGrowth: GrowthOnClosingBalance}.Validate())
	assert.ErrorIs(t, Policies{InvestmentGrowth: "monthly"}.Validate(), ErrInvalidScenario)
	assert.ErrorIs(t, Policies{DebtAmortization: "never"}.Validate(), ErrInvalidScenario)
}
