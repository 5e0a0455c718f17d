package output

import (
	"github.com/goccy/go-json"
	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the report as pretty-printed JSON, amounts rounded to cents.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(roundedReport(report), "", "  ")
}

// YAMLFormatter serializes the report as YAML, amounts rounded to cents.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return yaml.Marshal(roundedReport(report))
}

// roundedReport copies report with every run's result rounded for export.
func roundedReport(report *domain.Report) *domain.Report {
	out := &domain.Report{Runs: make([]domain.ScenarioRun, len(report.Runs)), Comparison: report.Comparison}
	for i, run := range report.Runs {
		if run.Result != nil {
			run.Result = run.Result.Rounded(2)
		}
		run.Aggregates = roundedAggregates(run.Aggregates)
		out.Runs[i] = run
	}
	if cmp := report.Comparison; cmp != nil {
		c := *cmp
		c.NetWorthDifference = c.NetWorthDifference.Round(2)
		c.LifetimeEarningsDifference = c.LifetimeEarningsDifference.Round(2)
		c.NetWorth = make([]domain.NetWorthPoint, len(cmp.NetWorth))
		for i, p := range cmp.NetWorth {
			c.NetWorth[i] = domain.NetWorthPoint{Year: p.Year, First: p.First.Round(2), Second: p.Second.Round(2)}
		}
		if cmp.Crossover != nil {
			x := *cmp.Crossover
			x.Fraction = x.Fraction.Round(4)
			c.Crossover = &x
		}
		out.Comparison = &c
	}
	return out
}

func roundedAggregates(a domain.Aggregates) domain.Aggregates {
	for _, f := range []*decimal.Decimal{
		&a.Earned, &a.Taxes, &a.LivingExpenses, &a.MajorExpenses, &a.DebtPaid,
		&a.EmergencyFund, &a.Invested, &a.InvestmentGrowth, &a.Saved, &a.SavingsRate,
	} {
		*f = f.Round(2)
	}
	return a
}
