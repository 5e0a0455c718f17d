package output

import (
	"fmt"

	"github.com/lifepath/projector/internal/domain"
)

// DefaultAssumptions lists the fixed modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Emergency fund target: six months of living expenses",
	"Emergency fund contribution: 30% of disposable income while below target",
	"FI target: 4% safe withdrawal rate on final-year living expenses",
	"Student debt: no interest, repaid over ten years",
	"Taxes: flat effective rate on gross salary",
}

// GenerateAssumptions creates the assumptions list for one set of run parameters.
func GenerateAssumptions(params domain.SimulationParameters) []string {
	p := params.Policies.WithDefaults()
	out := []string{
		fmt.Sprintf("Horizon: %d years", params.Years),
		fmt.Sprintf("Inflation: %.1f%% annually", params.InflationRate.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("Effective tax rate: %.1f%%", params.TaxRate.Mul(decimalHundred).InexactFloat64()),
		"Salary growth: " + salaryPolicyText[p.SalaryGrowth],
		"Investment growth: " + investmentPolicyText[p.InvestmentGrowth],
		"Debt repayment: " + debtPolicyText[p.DebtAmortization],
	}
	return append(out, DefaultAssumptions...)
}

var salaryPolicyText = map[domain.SalaryGrowthPolicy]string{
	domain.SalaryGrowthFromStart: "compounded from year 0 at the current rate",
	domain.SalaryGrowthRebased:   "compounded from the last career change",
}

var investmentPolicyText = map[domain.InvestmentGrowthPolicy]string{
	domain.GrowthOnOpeningBalance: "return on the year-start portfolio",
	domain.GrowthOnClosingBalance: "return on the portfolio after contributions",
}

var debtPolicyText = map[domain.DebtAmortizationPolicy]string{
	domain.DebtOriginalBalance: "a tenth of the original balance per year",
	domain.DebtCurrentBalance:  "a tenth of the remaining balance per year",
}
