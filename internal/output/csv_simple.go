package output

import (
	"bytes"
	"encoding/csv"

	"github.com/lifepath/projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per run,
// in report order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartingAge", "FinalAge", "TotalEarned", "TotalTaxes", "TotalSpent", "TotalDebtPaid", "TotalSaved", "FinalNetWorth", "FinalPortfolio", "FinalLiquidSavings", "FinalRemainingDebt", "FITarget", "FIAchieved", "FIAge", "DebtFreeYear", "InvestmentROI", "SavingsRate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, run := range report.Runs {
		s := run.Result.Summary
		row := []string{
			run.Scenario.Name,
			intToString(run.Scenario.StartingAge),
			intToString(s.FinalAge),
			fixed(s.TotalEarned),
			fixed(s.TotalTaxes),
			fixed(s.TotalSpent),
			fixed(s.TotalDebtPaid),
			fixed(s.TotalSaved),
			fixed(s.FinalNetWorth),
			fixed(s.FinalInvestmentPortfolio),
			fixed(s.FinalLiquidSavings),
			fixed(s.FinalRemainingDebt),
			fixed(s.FITarget),
			boolToString(s.FIAchieved),
			optionalInt(s.FIAge),
			optionalInt(s.DebtFreeYear),
			fixed(s.InvestmentROI),
			fixed(run.Aggregates.SavingsRate),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
