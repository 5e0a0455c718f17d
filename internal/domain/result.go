package domain

import (
	"github.com/shopspring/decimal"
)

// YearRecord is one simulated year's full state snapshot.
type YearRecord struct {
	Year int `yaml:"year" json:"year"` // 1-based
	Age  int `yaml:"age" json:"age"`

	// Income
	GrossSalary    decimal.Decimal `yaml:"gross_salary" json:"gross_salary"`
	Taxes          decimal.Decimal `yaml:"taxes" json:"taxes"`
	AfterTaxIncome decimal.Decimal `yaml:"after_tax_income" json:"after_tax_income"`

	// Spending
	InflationMultiplier decimal.Decimal `yaml:"inflation_multiplier" json:"inflation_multiplier"`
	LivingExpenses      decimal.Decimal `yaml:"living_expenses" json:"living_expenses"`
	MajorExpenses       decimal.Decimal `yaml:"major_expenses" json:"major_expenses"`
	DebtPayment         decimal.Decimal `yaml:"debt_payment" json:"debt_payment"`
	DebtBalance         decimal.Decimal `yaml:"debt_balance" json:"debt_balance"`

	// Savings
	EmergencyFundContribution decimal.Decimal `yaml:"emergency_fund_contrib" json:"emergency_fund_contrib"`
	InvestmentContribution    decimal.Decimal `yaml:"investment_contrib" json:"investment_contrib"`
	InvestmentGrowth          decimal.Decimal `yaml:"investment_growth" json:"investment_growth"`
	TotalSavings              decimal.Decimal `yaml:"total_savings" json:"total_savings"`

	// Balances (end of year)
	LiquidSavings       decimal.Decimal `yaml:"liquid_savings" json:"liquid_savings"`
	InvestmentPortfolio decimal.Decimal `yaml:"investment_portfolio" json:"investment_portfolio"`
	NetWorth            decimal.Decimal `yaml:"net_worth" json:"net_worth"`

	Events []string `yaml:"events" json:"events"`
}

// Summary holds lifetime totals and end-of-horizon balances for a run.
type Summary struct {
	TotalEarned        decimal.Decimal `yaml:"total_earned" json:"total_earned"`
	TotalTaxes         decimal.Decimal `yaml:"total_taxes" json:"total_taxes"`
	TotalLivingSpent   decimal.Decimal `yaml:"total_living_spent" json:"total_living_spent"`
	TotalMajorExpenses decimal.Decimal `yaml:"total_major_expenses" json:"total_major_expenses"`
	TotalSpent         decimal.Decimal `yaml:"total_spent" json:"total_spent"` // living + major
	TotalDebtPaid      decimal.Decimal `yaml:"total_debt_paid" json:"total_debt_paid"`
	TotalSaved         decimal.Decimal `yaml:"total_saved" json:"total_saved"`

	FinalAge                 int             `yaml:"final_age" json:"final_age"`
	FinalNetWorth            decimal.Decimal `yaml:"final_net_worth" json:"final_net_worth"`
	FinalLiquidSavings       decimal.Decimal `yaml:"final_liquid_savings" json:"final_liquid_savings"`
	FinalInvestmentPortfolio decimal.Decimal `yaml:"final_investment_portfolio" json:"final_investment_portfolio"`
	FinalRemainingDebt       decimal.Decimal `yaml:"final_remaining_debt" json:"final_remaining_debt"`

	// DebtFreeYear is the 1-based year the debt balance first reached zero.
	DebtFreeYear *int `yaml:"debt_free_year,omitempty" json:"debt_free_year,omitempty"`

	FITarget   decimal.Decimal `yaml:"fi_target" json:"fi_target"`
	FIAchieved bool            `yaml:"fi_achieved" json:"fi_achieved"`
	FIAge      *int            `yaml:"fi_age,omitempty" json:"fi_age,omitempty"`
	FIYear     *int            `yaml:"fi_year,omitempty" json:"fi_year,omitempty"`

	// InvestmentROI is (final net worth - total saved) / total saved, in percent.
	InvestmentROI decimal.Decimal `yaml:"investment_roi" json:"investment_roi"`
}

// SimulationResult is the full output of one run.
type SimulationResult struct {
	YearlyData []YearRecord `yaml:"yearly_data" json:"yearly_data"`
	Summary    Summary      `yaml:"summary" json:"summary"`
}

// Final returns the last year record, or nil for an empty result.
func (r *SimulationResult) Final() *YearRecord {
	if r == nil || len(r.YearlyData) == 0 {
		return nil
	}
	return &r.YearlyData[len(r.YearlyData)-1]
}

// Rounded returns a copy with every amount rounded to the given decimal places.
// Exports use it; the engine's own output stays exact.
func (r *SimulationResult) Rounded(places int32) *SimulationResult {
	out := &SimulationResult{YearlyData: make([]YearRecord, len(r.YearlyData))}
	for i, y := range r.YearlyData {
		y.GrossSalary = y.GrossSalary.Round(places)
		y.Taxes = y.Taxes.Round(places)
		y.AfterTaxIncome = y.AfterTaxIncome.Round(places)
		y.InflationMultiplier = y.InflationMultiplier.Round(6)
		y.LivingExpenses = y.LivingExpenses.Round(places)
		y.MajorExpenses = y.MajorExpenses.Round(places)
		y.DebtPayment = y.DebtPayment.Round(places)
		y.DebtBalance = y.DebtBalance.Round(places)
		y.EmergencyFundContribution = y.EmergencyFundContribution.Round(places)
		y.InvestmentContribution = y.InvestmentContribution.Round(places)
		y.InvestmentGrowth = y.InvestmentGrowth.Round(places)
		y.TotalSavings = y.TotalSavings.Round(places)
		y.LiquidSavings = y.LiquidSavings.Round(places)
		y.InvestmentPortfolio = y.InvestmentPortfolio.Round(places)
		y.NetWorth = y.NetWorth.Round(places)
		y.Events = append([]string{}, y.Events...)
		out.YearlyData[i] = y
	}
	s := r.Summary
	s.TotalEarned = s.TotalEarned.Round(places)
	s.TotalTaxes = s.TotalTaxes.Round(places)
	s.TotalLivingSpent = s.TotalLivingSpent.Round(places)
	s.TotalMajorExpenses = s.TotalMajorExpenses.Round(places)
	s.TotalSpent = s.TotalSpent.Round(places)
	s.TotalDebtPaid = s.TotalDebtPaid.Round(places)
	s.TotalSaved = s.TotalSaved.Round(places)
	s.FinalNetWorth = s.FinalNetWorth.Round(places)
	s.FinalLiquidSavings = s.FinalLiquidSavings.Round(places)
	s.FinalInvestmentPortfolio = s.FinalInvestmentPortfolio.Round(places)
	s.FinalRemainingDebt = s.FinalRemainingDebt.Round(places)
	s.FITarget = s.FITarget.Round(places)
	s.InvestmentROI = s.InvestmentROI.Round(places)
	out.Summary = s
	return out
}
