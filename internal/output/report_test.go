package output

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/lifepath/projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	prev := nowFunc
	SetNowFunc(func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) })
	t.Cleanup(func() { SetNowFunc(prev) })

	dir := t.TempDir()
	paths, err := GenerateReport(buildSingleReport(t), "json", dir, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "lifepath_report_20260301_093000.json")}, paths)

	paths, err = GenerateReport(buildComparisonReport(t), "all", dir, Options{CurrencySymbol: "€"})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	exts := make([]string, 0, len(paths))
	for _, p := range paths {
		exts = append(exts, filepath.Ext(p))
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
	sort.Strings(exts)
	assert.Equal(t, []string{".csv", ".html", ".txt"}, exts)
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	_, err := GenerateReport(&domain.Report{}, "definitely-not-a-format", t.TempDir(), Options{})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestGenerateAssumptions(t *testing.T) {
	params := domain.DefaultParameters()
	params.Policies.DebtAmortization = domain.DebtCurrentBalance

	got := GenerateAssumptions(params)
	assert.Contains(t, got, "Horizon: 30 years")
	assert.Contains(t, got, "Inflation: 3.0% annually")
	assert.Contains(t, got, "Effective tax rate: 25.0%")
	assert.Contains(t, got, "Salary growth: compounded from year 0 at the current rate")
	assert.Contains(t, got, "Debt repayment: a tenth of the remaining balance per year")
	assert.Subset(t, got, DefaultAssumptions)
}
