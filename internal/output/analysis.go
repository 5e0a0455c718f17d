package output

import (
	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	// Reason is "financial independence" or "net worth".
	Reason        string
	FinalNetWorth decimal.Decimal
	FIAge         *int
	// NetWorthAdvantage is the lead over the other scenario, zero for a single run.
	NetWorthAdvantage decimal.Decimal
	PercentageChange  decimal.Decimal
}

// AnalyzeScenarios picks the stronger scenario of a comparison: faster FI
// first, larger final net worth otherwise. Ties and single runs yield no
// recommendation.
func AnalyzeScenarios(report *domain.Report) Recommendation {
	if report == nil || report.Comparison == nil || len(report.Runs) != 2 {
		return Recommendation{}
	}
	cmp := report.Comparison
	first, second := report.Runs[0].Result.Summary, report.Runs[1].Result.Summary

	secondWins := false
	rec := Recommendation{}
	switch {
	case cmp.FI.WinnerSide != "":
		secondWins = cmp.FI.WinnerSide == domain.SideSecond
		rec.ScenarioName = cmp.FI.Winner
		rec.Reason = "financial independence"
	case cmp.NetWorthWinnerSide != "":
		secondWins = cmp.NetWorthWinnerSide == domain.SideSecond
		rec.ScenarioName = cmp.NetWorthWinner
		rec.Reason = "net worth"
	default:
		return Recommendation{}
	}

	best, other := first, second
	if secondWins {
		best, other = second, first
	}
	rec.FinalNetWorth = best.FinalNetWorth
	rec.FIAge = best.FIAge
	rec.NetWorthAdvantage = best.FinalNetWorth.Sub(other.FinalNetWorth)
	if !other.FinalNetWorth.IsZero() {
		rec.PercentageChange = rec.NetWorthAdvantage.Div(other.FinalNetWorth.Abs()).Mul(decimalHundred)
	}
	return rec
}
