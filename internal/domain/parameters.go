package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SalaryGrowthPolicy selects how growth compounds after a career change.
type SalaryGrowthPolicy string

const (
	// SalaryGrowthFromStart compounds the current rate from simulation year 0.
	SalaryGrowthFromStart SalaryGrowthPolicy = "from_start"
	// SalaryGrowthRebased compounds the current rate from the year of the last career change.
	SalaryGrowthRebased SalaryGrowthPolicy = "rebased"
)

// InvestmentGrowthPolicy selects which balance earns the annual return.
type InvestmentGrowthPolicy string

const (
	// GrowthOnOpeningBalance applies the return to last year's ending balance.
	GrowthOnOpeningBalance InvestmentGrowthPolicy = "opening_balance"
	// GrowthOnClosingBalance applies the return after this year's contribution is added.
	GrowthOnClosingBalance InvestmentGrowthPolicy = "closing_balance"
)

// DebtAmortizationPolicy selects how the annual debt payment is sized.
type DebtAmortizationPolicy string

const (
	// DebtOriginalBalance pays a tenth of the original balance every year.
	DebtOriginalBalance DebtAmortizationPolicy = "original_balance"
	// DebtCurrentBalance pays a tenth of the remaining balance every year.
	DebtCurrentBalance DebtAmortizationPolicy = "current_balance"
)

// Policies pins the modelling variants for one run. Zero values select the
// canonical variant of each.
type Policies struct {
	SalaryGrowth     SalaryGrowthPolicy     `yaml:"salary_growth,omitempty" json:"salary_growth,omitempty" toml:"salary_growth"`
	InvestmentGrowth InvestmentGrowthPolicy `yaml:"investment_growth,omitempty" json:"investment_growth,omitempty" toml:"investment_growth"`
	DebtAmortization DebtAmortizationPolicy `yaml:"debt_amortization,omitempty" json:"debt_amortization,omitempty" toml:"debt_amortization"`
}

// WithDefaults fills unset policies with the canonical variants.
func (p Policies) WithDefaults() Policies {
	if p.SalaryGrowth == "" {
		p.SalaryGrowth = SalaryGrowthFromStart
	}
	if p.InvestmentGrowth == "" {
		p.InvestmentGrowth = GrowthOnOpeningBalance
	}
	if p.DebtAmortization == "" {
		p.DebtAmortization = DebtOriginalBalance
	}
	return p
}

// Validate rejects unknown policy names.
func (p Policies) Validate() error {
	p = p.WithDefaults()
	switch p.SalaryGrowth {
	case SalaryGrowthFromStart, SalaryGrowthRebased:
	default:
		return fmt.Errorf("%w: unknown salary growth policy %q", ErrInvalidScenario, p.SalaryGrowth)
	}
	switch p.InvestmentGrowth {
	case GrowthOnOpeningBalance, GrowthOnClosingBalance:
	default:
		return fmt.Errorf("%w: unknown investment growth policy %q", ErrInvalidScenario, p.InvestmentGrowth)
	}
	switch p.DebtAmortization {
	case DebtOriginalBalance, DebtCurrentBalance:
	default:
		return fmt.Errorf("%w: unknown debt amortization policy %q", ErrInvalidScenario, p.DebtAmortization)
	}
	return nil
}

// SimulationParameters are run-time inputs, never stored with the scenario.
type SimulationParameters struct {
	Years         int             `yaml:"years" json:"years"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	TaxRate       decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
	Policies      Policies        `yaml:"policies,omitempty" json:"policies,omitempty"`
}

// DefaultParameters mirrors the analysis defaults: 30 years, 3% inflation, 25% tax.
func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		Years:         30,
		InflationRate: decimal.NewFromFloat(0.03),
		TaxRate:       decimal.NewFromFloat(0.25),
	}
}

// Validate checks the horizon and rates.
func (p SimulationParameters) Validate() error {
	if p.Years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidScenario, p.Years)
	}
	if p.InflationRate.IsNegative() {
		return fmt.Errorf("%w: inflation rate cannot be negative, got %s", ErrInvalidScenario, p.InflationRate)
	}
	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax rate must be between 0 and 1, got %s", ErrInvalidScenario, p.TaxRate)
	}
	return p.Policies.Validate()
}
