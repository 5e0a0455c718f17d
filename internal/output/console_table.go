package output

import (
	"fmt"
	"strings"

	"github.com/lifepath/projector/internal/domain"
)

// ConsoleFormatter renders bordered terminal tables: a summary, the yearly
// projection and milestones per run, then the comparison when present.
type ConsoleFormatter struct {
	Symbol string
	// Events adds the per-year event log under each projection.
	Events bool
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	money := currency(c.Symbol)
	var b strings.Builder

	for i, run := range report.Runs {
		if i > 0 {
			b.WriteString("\n")
		}
		s := run.Result.Summary
		b.WriteString(RenderTitle(strings.ToUpper(run.Scenario.Name)))
		b.WriteString("\n\n")

		fi := warnStyle.Render("not reached")
		if s.FIAchieved && s.FIAge != nil {
			fi = goodStyle.Render(fmt.Sprintf("age %d (year %d)", *s.FIAge, *s.FIYear))
		}
		debtFree := "-"
		if s.DebtFreeYear != nil {
			debtFree = fmt.Sprintf("year %d", *s.DebtFreeYear)
		}
		b.WriteString(RenderTable(Table{
			Title:   "Summary",
			Headers: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Ages", fmt.Sprintf("%d to %d", run.Scenario.StartingAge, s.FinalAge)},
				{"Total earned", money(s.TotalEarned)},
				{"Total taxes", money(s.TotalTaxes)},
				{"Total spent", money(s.TotalSpent)},
				{"Total saved", money(s.TotalSaved)},
				{"Savings rate", FormatPercentage(run.Aggregates.SavingsRate)},
				{"---"},
				{"Final net worth", money(s.FinalNetWorth)},
				{"Final portfolio", money(s.FinalInvestmentPortfolio)},
				{"Final liquid savings", money(s.FinalLiquidSavings)},
				{"Remaining debt", money(s.FinalRemainingDebt)},
				{"Debt free", debtFree},
				{"---"},
				{"FI target", money(s.FITarget)},
				{"FI", fi},
				{"Investment ROI", FormatPercentage(s.InvestmentROI)},
			},
		}))
		b.WriteString("\n")

		rows := make([][]string, 0, len(run.Result.YearlyData))
		for _, y := range run.Result.YearlyData {
			rows = append(rows, []string{
				intToString(y.Year),
				intToString(y.Age),
				money(y.GrossSalary),
				money(y.Taxes),
				money(y.LivingExpenses),
				money(y.MajorExpenses),
				money(y.DebtPayment),
				money(y.TotalSavings),
				money(y.InvestmentPortfolio),
				money(y.NetWorth),
			})
		}
		b.WriteString(RenderTable(Table{
			Title:   "Yearly projection",
			Headers: []string{"Year", "Age", "Gross", "Taxes", "Living", "Major", "Debt", "Saved", "Portfolio", "Net worth"},
			Rows:    rows,
		}))

		if len(run.Milestones) > 0 {
			b.WriteString("\n")
			ms := make([][]string, 0, len(run.Milestones))
			for _, m := range run.Milestones {
				ms = append(ms, []string{money(m.Threshold), intToString(m.Age), intToString(m.Year)})
			}
			b.WriteString(RenderTable(Table{Title: "Milestones", Headers: []string{"Net worth", "Age", "Year"}, Rows: ms}))
		}

		if c.Events {
			b.WriteString("\n  ")
			b.WriteString(headerStyle.Render("Events"))
			b.WriteString("\n")
			for _, y := range run.Result.YearlyData {
				for _, e := range y.Events {
					fmt.Fprintf(&b, "  %3d  %s\n", y.Year, e)
				}
			}
		}
	}

	if cmp := report.Comparison; cmp != nil {
		b.WriteString("\n")
		b.WriteString(RenderTitle("COMPARISON"))
		b.WriteString("\n\n")
		b.WriteString(c.comparisonTable(report))
		if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
			fmt.Fprintf(&b, "\n  Recommended: %s (%s, ahead by %s)\n",
				goodStyle.Render(rec.ScenarioName), rec.Reason, money(rec.NetWorthAdvantage))
		}
	}
	return []byte(b.String()), nil
}

func (c ConsoleFormatter) comparisonTable(report *domain.Report) string {
	money := currency(c.Symbol)
	cmp := report.Comparison
	first, second := report.Runs[0].Result.Summary, report.Runs[1].Result.Summary

	fiAge := func(p *int) string {
		if p == nil {
			return "-"
		}
		return intToString(*p)
	}
	rows := [][]string{
		{"Final net worth", money(first.FinalNetWorth), money(second.FinalNetWorth), money(cmp.NetWorthDifference)},
		{"Lifetime earnings", money(first.TotalEarned), money(second.TotalEarned), money(cmp.LifetimeEarningsDifference)},
		{"FI age", fiAge(cmp.FI.FirstAge), fiAge(cmp.FI.SecondAge), fiWinnerText(cmp.FI)},
	}
	if cmp.Crossover != nil {
		rows = append(rows, []string{"Lead change", fmt.Sprintf("year %d", cmp.Crossover.Year), "", cmp.Crossover.Leader})
	}
	out := RenderTable(Table{Headers: []string{"", cmp.First, cmp.Second, "Difference"}, Rows: rows})

	nw := make([][]string, 0, len(cmp.NetWorth))
	for _, p := range cmp.NetWorth {
		nw = append(nw, []string{intToString(p.Year), money(p.First), money(p.Second), money(p.First.Sub(p.Second))})
	}
	return out + "\n" + RenderTable(Table{
		Title:   "Net worth by year",
		Headers: []string{"Year", cmp.First, cmp.Second, "Difference"},
		Rows:    nw,
	})
}

func fiWinnerText(fi domain.FIComparison) string {
	switch {
	case fi.Winner != "" && fi.YearsFaster > 0:
		return fmt.Sprintf("%s by %d years", fi.Winner, fi.YearsFaster)
	case fi.Winner != "":
		return fi.Winner
	case fi.Outcome == domain.FIBothAchieved:
		return "same age"
	default:
		return "neither"
	}
}
