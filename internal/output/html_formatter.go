package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a self-contained HTML report with a net-worth chart.
type HTMLFormatter struct {
	Symbol string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": func(d decimal.Decimal) string { return FormatCurrency(d) },
	"pct":  FormatPercentage,
	"rate": FormatRate,
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-run net worth line fed to the inline chart script.
type chartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	money := currency(h.Symbol)

	series := make([]chartSeries, 0, len(report.Runs))
	var assumptions []string
	for _, run := range report.Runs {
		s := chartSeries{Name: run.Scenario.Name, Values: make([]float64, 0, len(run.Result.YearlyData))}
		for _, y := range run.Result.YearlyData {
			s.Values = append(s.Values, y.NetWorth.Round(2).InexactFloat64())
		}
		series = append(series, s)
		if assumptions == nil {
			assumptions = GenerateAssumptions(run.Parameters)
		}
	}
	if assumptions == nil {
		assumptions = DefaultAssumptions
	}

	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{"curr": money})

	data := struct {
		*domain.Report
		Recommendation Recommendation
		Assumptions    []string
		Series         []chartSeries
	}{report, AnalyzeScenarios(report), assumptions, series}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
