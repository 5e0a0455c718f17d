package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidScenario is returned for malformed or out-of-range simulation input.
// It is the only failure the simulation engine produces.
var ErrInvalidScenario = errors.New("invalid scenario")

// MajorExpense is a one-off future cost paid in a given simulation year (0-indexed).
type MajorExpense struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Year   int             `yaml:"year" json:"year"`
}

// CareerChange overrides the salary trajectory from a given simulation year (0-indexed) onward.
type CareerChange struct {
	Year          int             `yaml:"year" json:"year"`
	NewSalary     decimal.Decimal `yaml:"new_salary" json:"new_salary"`
	NewGrowthRate decimal.Decimal `yaml:"new_growth_rate" json:"new_growth_rate"`
}

// Scenario is a user-authored life path driving a simulation.
// Optional fields default to neutral values: zero debt and no events.
type Scenario struct {
	ID        string    `yaml:"id,omitempty" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updated_at"`

	StartingAge          int             `yaml:"starting_age" json:"starting_age"`
	StartingSalary       decimal.Decimal `yaml:"starting_salary" json:"starting_salary"`
	SalaryGrowthRate     decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"`
	MonthlyExpenses      decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	SavingsRate          decimal.Decimal `yaml:"savings_rate" json:"savings_rate"`
	InvestmentReturnRate decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`
	StudentDebt          decimal.Decimal `yaml:"student_debt,omitempty" json:"student_debt"`

	MajorExpenses []MajorExpense `yaml:"major_expenses,omitempty" json:"major_expenses"`
	CareerChanges []CareerChange `yaml:"career_changes,omitempty" json:"career_changes"`
}

// Validate checks every field against its allowed range. Invalid values are
// reported, never clamped.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if s.StartingAge < 0 {
		return fmt.Errorf("%w: starting age cannot be negative, got %d", ErrInvalidScenario, s.StartingAge)
	}
	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"starting salary", s.StartingSalary},
		{"salary growth rate", s.SalaryGrowthRate},
		{"monthly expenses", s.MonthlyExpenses},
		{"investment return rate", s.InvestmentReturnRate},
		{"student debt", s.StudentDebt},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative, got %s", ErrInvalidScenario, f.field, f.value)
		}
	}
	if s.SavingsRate.IsNegative() || s.SavingsRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: savings rate must be between 0 and 1, got %s", ErrInvalidScenario, s.SavingsRate)
	}

	for i, e := range s.MajorExpenses {
		if e.Year < 0 {
			return fmt.Errorf("%w: major expense %d (%s) year cannot be negative", ErrInvalidScenario, i, e.Name)
		}
		if e.Amount.IsNegative() {
			return fmt.Errorf("%w: major expense %d (%s) amount cannot be negative", ErrInvalidScenario, i, e.Name)
		}
	}
	for i, c := range s.CareerChanges {
		if c.Year < 0 {
			return fmt.Errorf("%w: career change %d year cannot be negative", ErrInvalidScenario, i)
		}
		if c.NewSalary.IsNegative() {
			return fmt.Errorf("%w: career change %d salary cannot be negative", ErrInvalidScenario, i)
		}
		if c.NewGrowthRate.IsNegative() {
			return fmt.Errorf("%w: career change %d growth rate cannot be negative", ErrInvalidScenario, i)
		}
	}
	return nil
}

// Clone returns a deep copy so stores never share event slices with callers.
func (s Scenario) Clone() Scenario {
	out := s
	if s.MajorExpenses != nil {
		out.MajorExpenses = append([]MajorExpense(nil), s.MajorExpenses...)
	}
	if s.CareerChanges != nil {
		out.CareerChanges = append([]CareerChange(nil), s.CareerChanges...)
	}
	return out
}
