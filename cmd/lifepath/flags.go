package main

import (
	"context"
	"fmt"

	"github.com/lifepath/projector/internal/config"
	"github.com/lifepath/projector/internal/domain"
	"github.com/lifepath/projector/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// runFlags select run parameters and report output.
type runFlags struct {
	years            int
	inflation        string
	tax              string
	salaryGrowth     string
	investmentGrowth string
	debtAmortization string
	format           string
	outputDir        string
	name             string
}

func (f *runFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.years, "years", 0, "Simulation horizon in years")
	fl.StringVar(&f.inflation, "inflation", "", "Annual inflation rate, e.g. 0.03")
	fl.StringVar(&f.tax, "tax", "", "Effective tax rate, e.g. 0.25")
	fl.StringVar(&f.salaryGrowth, "salary-growth", "", "Salary growth policy: from_start or rebased")
	fl.StringVar(&f.investmentGrowth, "investment-growth", "", "Investment growth policy: opening_balance or closing_balance")
	fl.StringVar(&f.debtAmortization, "debt-amortization", "", "Debt policy: original_balance or current_balance")
	fl.StringVarP(&f.format, "format", "f", "", "Output format (console, console-lite, csv, detailed-csv, json, yaml, html, all)")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "Write the report to a timestamped file in this directory")
	fl.StringVar(&f.name, "name", "", "Scenario name within a scenario file")
}

// parameters layers config defaults, file parameters and flags, in that order.
func (f *runFlags) parameters(cmd *cobra.Command, cfg config.Settings, file *domain.SimulationParameters) (domain.SimulationParameters, error) {
	p := cfg.Parameters()
	if file != nil {
		p = *file
	}
	if cmd.Flags().Changed("years") {
		p.Years = f.years
	}
	if f.inflation != "" {
		d, err := decimal.NewFromString(f.inflation)
		if err != nil {
			return p, fmt.Errorf("--inflation: %w", err)
		}
		p.InflationRate = d
	}
	if f.tax != "" {
		d, err := decimal.NewFromString(f.tax)
		if err != nil {
			return p, fmt.Errorf("--tax: %w", err)
		}
		p.TaxRate = d
	}
	if f.salaryGrowth != "" {
		p.Policies.SalaryGrowth = domain.SalaryGrowthPolicy(f.salaryGrowth)
	}
	if f.investmentGrowth != "" {
		p.Policies.InvestmentGrowth = domain.InvestmentGrowthPolicy(f.investmentGrowth)
	}
	if f.debtAmortization != "" {
		p.Policies.DebtAmortization = domain.DebtAmortizationPolicy(f.debtAmortization)
	}
	return p, p.Validate()
}

// render writes report to stdout, or to files when --output-dir is set.
func (f *runFlags) render(cmd *cobra.Command, a *app, report *domain.Report) error {
	format := f.format
	if format == "" {
		format = a.cfg.Output.Format
	}
	opts := output.Options{CurrencySymbol: a.cfg.Output.CurrencySymbol}

	if f.outputDir != "" || output.NormalizeFormatName(format) == "all" {
		dir := f.outputDir
		if dir == "" {
			dir = "."
		}
		paths, err := output.GenerateReport(report, format, dir, opts)
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
		}
		return err
	}

	fm, err := output.NewFormatter(format, opts)
	if err != nil {
		return err
	}
	data, err := fm.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// resolved is a scenario reference loaded from the store or a file.
type resolved struct {
	scenarios []domain.Scenario
	params    *domain.SimulationParameters
}

// resolve treats ref as a scenario file when it exists on disk, otherwise as
// a stored scenario id. name picks one scenario from a multi-scenario file.
func resolve(ctx context.Context, a *app, ref, name string) (*resolved, error) {
	if isFile(ref) {
		file, err := config.NewInputParser().LoadFromFile(ref)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return &resolved{scenarios: file.Scenarios, params: file.Parameters}, nil
		}
		sc, err := file.Find(name)
		if err != nil {
			return nil, err
		}
		return &resolved{scenarios: []domain.Scenario{*sc}, params: file.Parameters}, nil
	}
	sc, err := a.svc.GetScenario(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", ref, err)
	}
	return &resolved{scenarios: []domain.Scenario{*sc}}, nil
}

// single narrows a resolved reference to exactly one scenario.
func (r *resolved) single() (*domain.Scenario, error) {
	if len(r.scenarios) != 1 {
		return nil, fmt.Errorf("reference holds %d scenarios; pick one with --name", len(r.scenarios))
	}
	return &r.scenarios[0], nil
}
