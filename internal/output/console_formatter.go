package output

import (
	"bytes"
	"fmt"

	"github.com/lifepath/projector/internal/domain"
)

// ConsoleLiteFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleLiteFormatter struct {
	Symbol string
}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.Report) ([]byte, error) {
	money := currency(c.Symbol)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LIFE PATH SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, run := range report.Runs {
		s := run.Result.Summary
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: Age %d-%d NetWorth=%s Earned=%s Saved=%s\n",
			run.Scenario.Name,
			run.Scenario.StartingAge,
			s.FinalAge,
			money(s.FinalNetWorth),
			money(s.TotalEarned),
			money(s.TotalSaved),
		)
		fi := "not reached"
		if s.FIAchieved && s.FIAge != nil {
			fi = fmt.Sprintf("age %d", *s.FIAge)
		}
		fmt.Fprintf(&buf, "  FITarget=%s FI=%s ROI=%s\n", money(s.FITarget), fi, FormatPercentage(s.InvestmentROI))
		if s.DebtFreeYear != nil {
			fmt.Fprintf(&buf, "  DebtFree=year %d\n", *s.DebtFreeYear)
		}
	}
	if cmp := report.Comparison; cmp != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Net worth difference: %s\n", money(cmp.NetWorthDifference))
		fmt.Fprintf(&buf, "Lifetime earnings difference: %s\n", money(cmp.LifetimeEarningsDifference))
		if cmp.Crossover != nil {
			fmt.Fprintf(&buf, "Lead changes in year %d\n", cmp.Crossover.Year)
		}
	}
	if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s, Δ %s / %s)\n", rec.ScenarioName, rec.Reason, money(rec.NetWorthAdvantage), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
