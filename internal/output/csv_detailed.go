package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/lifepath/projector/internal/domain"
)

// CSVDetailedExporter provides the raw yearly projection per run/year.
// Events are joined with "; ".
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "GrossSalary", "Taxes", "AfterTaxIncome", "InflationMultiplier", "LivingExpenses", "MajorExpenses", "DebtPayment", "DebtBalance", "EmergencyFundContribution", "InvestmentContribution", "InvestmentGrowth", "TotalSavings", "LiquidSavings", "InvestmentPortfolio", "NetWorth", "Events"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, run := range report.Runs {
		for _, yr := range run.Result.YearlyData {
			row := []string{
				run.Scenario.Name,
				intToString(yr.Year),
				intToString(yr.Age),
				fixed(yr.GrossSalary),
				fixed(yr.Taxes),
				fixed(yr.AfterTaxIncome),
				yr.InflationMultiplier.StringFixed(6),
				fixed(yr.LivingExpenses),
				fixed(yr.MajorExpenses),
				fixed(yr.DebtPayment),
				fixed(yr.DebtBalance),
				fixed(yr.EmergencyFundContribution),
				fixed(yr.InvestmentContribution),
				fixed(yr.InvestmentGrowth),
				fixed(yr.TotalSavings),
				fixed(yr.LiquidSavings),
				fixed(yr.InvestmentPortfolio),
				fixed(yr.NetWorth),
				strings.Join(yr.Events, "; "),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
