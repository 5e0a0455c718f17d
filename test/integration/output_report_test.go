package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifepath/projector/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	svc, stored, params := exampleService(t, "memory")
	report, err := svc.Compare(context.Background(), stored[0].ID, stored[1].ID, params)
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		f, err := output.NewFormatter(name, output.Options{CurrencySymbol: "$"})
		require.NoError(t, err, name)
		data, err := f.Format(report)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
		assert.Contains(t, string(data), "Software Engineer Path", name)
		assert.Contains(t, string(data), "Graduate School Path", name)
	}
}

func TestGenerateReportAllFormats(t *testing.T) {
	svc, stored, params := exampleService(t, "memory")
	report, err := svc.Simulate(context.Background(), stored[1].ID, params)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := output.GenerateReport(report, "all", dir, output.Options{})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, p := range paths {
		fi, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, fi.Size(), p)
		assert.True(t, strings.HasPrefix(filepath.Base(p), "lifepath_report_"), p)
	}
}

func TestRecommendationAcrossExamplePaths(t *testing.T) {
	svc, stored, params := exampleService(t, "memory")
	report, err := svc.Compare(context.Background(), stored[0].ID, stored[1].ID, params)
	require.NoError(t, err)

	rec := output.AnalyzeScenarios(report)
	require.NotEmpty(t, rec.ScenarioName)
	assert.Contains(t, []string{stored[0].Name, stored[1].Name}, rec.ScenarioName)
	assert.Contains(t, []string{"financial independence", "net worth"}, rec.Reason)
}
