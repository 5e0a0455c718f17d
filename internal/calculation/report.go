package calculation

import (
	"fmt"

	"github.com/lifepath/projector/internal/domain"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultMilestones are the net-worth thresholds reported when none are configured.
var DefaultMilestones = []decimal.Decimal{
	decimal.NewFromInt(100_000),
	decimal.NewFromInt(250_000),
	decimal.NewFromInt(500_000),
	decimal.NewFromInt(1_000_000),
	decimal.NewFromInt(2_500_000),
	decimal.NewFromInt(5_000_000),
}

// Compare derives the side-by-side view of two runs. Differences are
// first minus second. When the runs cover different horizons the per-year
// series and crossover only cover the years both have.
func Compare(firstName string, first *domain.SimulationResult, secondName string, second *domain.SimulationResult) (*domain.Comparison, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("compare: both results are required")
	}
	if len(first.YearlyData) == 0 || len(second.YearlyData) == 0 {
		return nil, fmt.Errorf("compare: results must contain at least one year")
	}

	cmp := &domain.Comparison{
		First:                      firstName,
		Second:                     secondName,
		NetWorthDifference:         first.Summary.FinalNetWorth.Sub(second.Summary.FinalNetWorth),
		LifetimeEarningsDifference: first.Summary.TotalEarned.Sub(second.Summary.TotalEarned),
		FI:                         compareFI(firstName, first.Summary, secondName, second.Summary),
	}
	switch cmp.NetWorthDifference.Sign() {
	case 1:
		cmp.NetWorthWinner, cmp.NetWorthWinnerSide = firstName, domain.SideFirst
	case -1:
		cmp.NetWorthWinner, cmp.NetWorthWinnerSide = secondName, domain.SideSecond
	}

	n := min(len(first.YearlyData), len(second.YearlyData))
	cmp.NetWorth = make([]domain.NetWorthPoint, n)
	for i := 0; i < n; i++ {
		cmp.NetWorth[i] = domain.NetWorthPoint{
			Year:   first.YearlyData[i].Year,
			First:  first.YearlyData[i].NetWorth,
			Second: second.YearlyData[i].NetWorth,
		}
	}

	crossover, err := NetWorthCrossover(firstName, secondName, cmp.NetWorth)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	cmp.Crossover = crossover
	return cmp, nil
}

// compareFI applies the FI tie-break: an achiever always beats a non-achiever,
// between two achievers the younger FI age wins, and equal ages have no winner.
func compareFI(firstName string, first domain.Summary, secondName string, second domain.Summary) domain.FIComparison {
	out := domain.FIComparison{FirstAge: first.FIAge, SecondAge: second.FIAge}
	switch {
	case first.FIAchieved && second.FIAchieved:
		out.Outcome = domain.FIBothAchieved
		a, b := *first.FIAge, *second.FIAge
		switch {
		case a < b:
			out.Winner, out.WinnerSide = firstName, domain.SideFirst
			out.YearsFaster = b - a
		case b < a:
			out.Winner, out.WinnerSide = secondName, domain.SideSecond
			out.YearsFaster = a - b
		}
	case first.FIAchieved:
		out.Outcome = domain.FIFirstOnly
		out.Winner, out.WinnerSide = firstName, domain.SideFirst
	case second.FIAchieved:
		out.Outcome = domain.FISecondOnly
		out.Winner, out.WinnerSide = secondName, domain.SideSecond
	default:
		out.Outcome = domain.FINeitherAchieved
	}
	return out
}

// Milestones returns, for each threshold in the order given, the first year
// whose ending net worth reaches it. Thresholds never reached are omitted.
func Milestones(result *domain.SimulationResult, thresholds []decimal.Decimal) []domain.Milestone {
	if result == nil {
		return nil
	}
	milestones := make([]domain.Milestone, 0, len(thresholds))
	for _, threshold := range thresholds {
		for _, y := range result.YearlyData {
			if y.NetWorth.GreaterThanOrEqual(threshold) {
				milestones = append(milestones, domain.Milestone{Threshold: threshold, Age: y.Age, Year: y.Year})
				break
			}
		}
	}
	return milestones
}

// Aggregates sums the yearly records into lifetime totals.
func Aggregates(result *domain.SimulationResult) domain.Aggregates {
	var agg domain.Aggregates
	if result == nil {
		return agg
	}
	afterTax := decimal.Zero
	for _, y := range result.YearlyData {
		agg.Earned = agg.Earned.Add(y.GrossSalary)
		agg.Taxes = agg.Taxes.Add(y.Taxes)
		agg.LivingExpenses = agg.LivingExpenses.Add(y.LivingExpenses)
		agg.MajorExpenses = agg.MajorExpenses.Add(y.MajorExpenses)
		agg.DebtPaid = agg.DebtPaid.Add(y.DebtPayment)
		agg.EmergencyFund = agg.EmergencyFund.Add(y.EmergencyFundContribution)
		agg.Invested = agg.Invested.Add(y.InvestmentContribution)
		agg.InvestmentGrowth = agg.InvestmentGrowth.Add(y.InvestmentGrowth)
		agg.Saved = agg.Saved.Add(y.TotalSavings)
		afterTax = afterTax.Add(y.AfterTaxIncome)
	}
	agg.SavingsRate = dec.Percent(agg.Saved, afterTax)
	return agg
}

// BuildRun bundles a simulated scenario with its derived milestones and aggregates.
func BuildRun(scenario *domain.Scenario, params domain.SimulationParameters, result *domain.SimulationResult, thresholds []decimal.Decimal) domain.ScenarioRun {
	return domain.ScenarioRun{
		Scenario:   scenario.Clone(),
		Parameters: params,
		Result:     result,
		Milestones: Milestones(result, thresholds),
		Aggregates: Aggregates(result),
	}
}
