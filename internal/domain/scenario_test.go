package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() Scenario {
	return Scenario{
		Name:                 "Baseline",
		StartingAge:          25,
		StartingSalary:       decimal.NewFromInt(60000),
		SalaryGrowthRate:     decimal.RequireFromString("0.03"),
		MonthlyExpenses:      decimal.NewFromInt(2000),
		SavingsRate:          decimal.RequireFromString("0.2"),
		InvestmentReturnRate: decimal.RequireFromString("0.07"),
	}
}

func TestScenarioValidate(t *testing.T) {
	ok := validScenario()
	require.NoError(t, ok.Validate())

	cases := map[string]func(*Scenario){
		"missing name":         func(s *Scenario) { s.Name = "" },
		"negative age":         func(s *Scenario) { s.StartingAge = -1 },
		"negative salary":      func(s *Scenario) { s.StartingSalary = decimal.NewFromInt(-1) },
		"negative growth":      func(s *Scenario) { s.SalaryGrowthRate = decimal.RequireFromString("-0.01") },
		"negative expenses":    func(s *Scenario) { s.MonthlyExpenses = decimal.NewFromInt(-5) },
		"negative return":      func(s *Scenario) { s.InvestmentReturnRate = decimal.RequireFromString("-0.1") },
		"negative debt":        func(s *Scenario) { s.StudentDebt = decimal.NewFromInt(-100) },
		"savings above one":    func(s *Scenario) { s.SavingsRate = decimal.RequireFromString("1.01") },
		"savings below zero":   func(s *Scenario) { s.SavingsRate = decimal.RequireFromString("-0.1") },
		"expense year":         func(s *Scenario) { s.MajorExpenses = []MajorExpense{{Name: "Car", Amount: decimal.NewFromInt(1), Year: -1}} },
		"expense amount":       func(s *Scenario) { s.MajorExpenses = []MajorExpense{{Name: "Car", Amount: decimal.NewFromInt(-1)}} },
		"career change year":   func(s *Scenario) { s.CareerChanges = []CareerChange{{Year: -2}} },
		"career change salary": func(s *Scenario) { s.CareerChanges = []CareerChange{{NewSalary: decimal.NewFromInt(-1)}} },
		"career change growth": func(s *Scenario) { s.CareerChanges = []CareerChange{{NewGrowthRate: decimal.NewFromInt(-1)}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := validScenario()
			mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidScenario)
		})
	}
}

func TestScenarioBoundaryValues(t *testing.T) {
	s := validScenario()
	s.StartingAge = 0
	s.SavingsRate = decimal.NewFromInt(1)
	s.StartingSalary = decimal.Zero
	assert.NoError(t, s.Validate(), "boundaries are inclusive")
}

func TestScenarioCloneIsDeep(t *testing.T) {
	s := validScenario()
	s.MajorExpenses = []MajorExpense{{Name: "Car", Amount: decimal.NewFromInt(20000), Year: 2}}
	s.CareerChanges = []CareerChange{{Year: 3, NewSalary: decimal.NewFromInt(90000)}}

	c := s.Clone()
	c.MajorExpenses[0].Name = "Boat"
	c.CareerChanges[0].Year = 9

	assert.Equal(t, "Car", s.MajorExpenses[0].Name)
	assert.Equal(t, 3, s.CareerChanges[0].Year)
	assert.Nil(t, validScenario().Clone().MajorExpenses)
}
