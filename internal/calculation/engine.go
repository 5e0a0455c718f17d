package calculation

import (
	"fmt"

	"github.com/lifepath/projector/internal/domain"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	// Six months of living expenses.
	emergencyFundTargetShare = decimal.NewFromFloat(0.5)
	// Share of disposable income routed to the emergency fund while below target.
	emergencyFundContributionShare = decimal.NewFromFloat(0.3)
	// 4% rule.
	safeWithdrawalRate = decimal.NewFromFloat(0.04)
)

// Simulate runs a scenario year by year under the given parameters.
//
// It is a pure function: the scenario is read, never mutated, and no state
// survives the call, so concurrent calls are safe. The only failure is
// domain.ErrInvalidScenario, returned before any year is produced.
func Simulate(scenario *domain.Scenario, params domain.SimulationParameters) (*domain.SimulationResult, error) {
	if scenario == nil {
		return nil, fmt.Errorf("%w: scenario is nil", domain.ErrInvalidScenario)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	policies := params.Policies.WithDefaults()

	salary := newSalaryTrack(scenario, policies.SalaryGrowth)
	debt := newDebtSchedule(scenario.StudentDebt, policies.DebtAmortization)
	portfolio := newPortfolio(scenario.InvestmentReturnRate, policies.InvestmentGrowth)
	liquidSavings := decimal.Zero
	inflationStep := one.Add(params.InflationRate)
	multiplier := one

	var summary domain.Summary
	yearly := make([]domain.YearRecord, 0, params.Years)

	for y := 0; y < params.Years; y++ {
		rec := domain.YearRecord{
			Year:   y + 1,
			Age:    scenario.StartingAge + y,
			Events: []string{},
		}

		for _, change := range salary.advance(y) {
			rec.Events = append(rec.Events, fmt.Sprintf("Career change: %s", dec.Grouped(change.NewSalary)))
		}

		if y > 0 {
			multiplier = multiplier.Mul(inflationStep)
		}
		rec.InflationMultiplier = multiplier
		rec.LivingExpenses = dec.Annual(scenario.MonthlyExpenses.Mul(multiplier))

		rec.GrossSalary = salary.gross()
		rec.Taxes = rec.GrossSalary.Mul(params.TaxRate)
		rec.AfterTaxIncome = rec.GrossSalary.Sub(rec.Taxes)

		rec.MajorExpenses = decimal.Zero
		for _, expense := range scenario.MajorExpenses {
			if expense.Year != y {
				continue
			}
			adjusted := expense.Amount.Mul(multiplier)
			rec.MajorExpenses = rec.MajorExpenses.Add(adjusted)
			rec.Events = append(rec.Events, fmt.Sprintf("%s: %s", expense.Name, dec.Grouped(adjusted)))
		}

		hadDebt := debt.outstanding()
		rec.DebtPayment = debt.pay()
		rec.DebtBalance = debt.balance
		if rec.DebtPayment.IsPositive() {
			rec.Events = append(rec.Events, fmt.Sprintf("Debt payment: %s", dec.Grouped(rec.DebtPayment)))
		}
		if hadDebt && !debt.outstanding() && summary.DebtFreeYear == nil {
			year := rec.Year
			summary.DebtFreeYear = &year
		}

		disposable := rec.AfterTaxIncome.Sub(rec.LivingExpenses).Sub(rec.MajorExpenses).Sub(rec.DebtPayment)

		rec.EmergencyFundContribution = decimal.Zero
		target := rec.LivingExpenses.Mul(emergencyFundTargetShare)
		if liquidSavings.LessThan(target) && disposable.IsPositive() {
			contribution := dec.Min(disposable.Mul(emergencyFundContributionShare), target.Sub(liquidSavings))
			liquidSavings = liquidSavings.Add(contribution)
			disposable = disposable.Sub(contribution)
			rec.EmergencyFundContribution = contribution
		}

		rec.InvestmentContribution = dec.FloorZero(disposable.Mul(scenario.SavingsRate))
		rec.InvestmentGrowth = portfolio.grow(rec.InvestmentContribution)

		rec.TotalSavings = rec.InvestmentContribution.Add(rec.EmergencyFundContribution)
		rec.LiquidSavings = liquidSavings
		rec.InvestmentPortfolio = portfolio.balance
		rec.NetWorth = liquidSavings.Add(portfolio.balance).Sub(debt.balance)

		summary.TotalEarned = summary.TotalEarned.Add(rec.GrossSalary)
		summary.TotalTaxes = summary.TotalTaxes.Add(rec.Taxes)
		summary.TotalLivingSpent = summary.TotalLivingSpent.Add(rec.LivingExpenses)
		summary.TotalMajorExpenses = summary.TotalMajorExpenses.Add(rec.MajorExpenses)
		summary.TotalDebtPaid = summary.TotalDebtPaid.Add(rec.DebtPayment)
		summary.TotalSaved = summary.TotalSaved.Add(rec.TotalSavings)

		yearly = append(yearly, rec)
	}

	result := &domain.SimulationResult{YearlyData: yearly}
	last := result.Final()
	summary.TotalSpent = summary.TotalLivingSpent.Add(summary.TotalMajorExpenses)
	summary.FinalAge = scenario.StartingAge + params.Years
	summary.FinalNetWorth = last.NetWorth
	summary.FinalLiquidSavings = last.LiquidSavings
	summary.FinalInvestmentPortfolio = last.InvestmentPortfolio
	summary.FinalRemainingDebt = last.DebtBalance
	summary.InvestmentROI = dec.Percent(summary.FinalNetWorth.Sub(summary.TotalSaved), summary.TotalSaved)

	summary.FITarget = fiTarget(scenario.MonthlyExpenses, last.InflationMultiplier)
	if fi := firstFIYear(yearly, summary.FITarget); fi != nil {
		age, year := fi.Age, fi.Year
		summary.FIAchieved = true
		summary.FIAge = &age
		summary.FIYear = &year
	}

	result.Summary = summary
	return result, nil
}

// fiTarget is the final year's inflation-adjusted annual living cost divided
// by the safe withdrawal rate. finalMultiplier is that year's inflation
// multiplier.
func fiTarget(monthlyExpenses, finalMultiplier decimal.Decimal) decimal.Decimal {
	finalAnnual := dec.Annual(monthlyExpenses.Mul(finalMultiplier))
	return finalAnnual.Div(safeWithdrawalRate)
}

// firstFIYear returns the first record whose investment portfolio (not net
// worth) reaches the target.
func firstFIYear(yearly []domain.YearRecord, target decimal.Decimal) *domain.YearRecord {
	for i := range yearly {
		if yearly[i].InvestmentPortfolio.GreaterThanOrEqual(target) {
			return &yearly[i]
		}
	}
	return nil
}
