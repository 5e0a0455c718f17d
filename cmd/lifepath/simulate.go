package main

import (
	"fmt"

	"github.com/lifepath/projector/internal/calculation"
	"github.com/lifepath/projector/internal/domain"
	"github.com/lifepath/projector/internal/output"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSimulateCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "simulate <id|file>",
		Short: "Project a stored scenario or every scenario of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ref, err := resolve(cmd.Context(), a, args[0], f.name)
			if err != nil {
				return err
			}
			params, err := f.parameters(cmd, a.cfg, ref.params)
			if err != nil {
				return err
			}

			report := &domain.Report{}
			for i := range ref.scenarios {
				r, err := a.svc.SimulateScenario(&ref.scenarios[i], params)
				if err != nil {
					return fmt.Errorf("%s: %w", ref.scenarios[i].Name, err)
				}
				report.Runs = append(report.Runs, r.Runs...)
			}
			return f.render(cmd, a, report)
		},
	}
	f.register(cmd)
	return cmd
}

func newCompareCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two scenarios side by side",
		Long: "Compare two scenarios under the same parameters. Each argument is a stored\n" +
			"scenario id; with --file, both are scenario names within that file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			file, _ := cmd.Flags().GetString("file")
			var first, second *domain.Scenario
			var fileParams *domain.SimulationParameters
			if file != "" {
				firstRef, err := resolve(cmd.Context(), a, file, args[0])
				if err != nil {
					return err
				}
				secondRef, err := resolve(cmd.Context(), a, file, args[1])
				if err != nil {
					return err
				}
				first, second, fileParams = &firstRef.scenarios[0], &secondRef.scenarios[0], firstRef.params
			} else {
				if first, err = a.svc.GetScenario(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("scenario %s: %w", args[0], err)
				}
				if second, err = a.svc.GetScenario(cmd.Context(), args[1]); err != nil {
					return fmt.Errorf("scenario %s: %w", args[1], err)
				}
			}

			params, err := f.parameters(cmd, a.cfg, fileParams)
			if err != nil {
				return err
			}
			report, err := a.svc.CompareScenarios(first, second, params)
			if err != nil {
				return err
			}
			return f.render(cmd, a, report)
		},
	}
	f.register(cmd)
	cmd.Flags().String("file", "", "Scenario file holding both named scenarios")
	return cmd
}

func newMilestonesCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	var thresholds []string
	cmd := &cobra.Command{
		Use:   "milestones <id|file>",
		Short: "Show the ages at which net worth crosses each threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ref, err := resolve(cmd.Context(), a, args[0], f.name)
			if err != nil {
				return err
			}
			sc, err := ref.single()
			if err != nil {
				return err
			}
			params, err := f.parameters(cmd, a.cfg, ref.params)
			if err != nil {
				return err
			}
			report, err := a.svc.SimulateScenario(sc, params)
			if err != nil {
				return err
			}
			run := report.Runs[0]

			milestones := run.Milestones
			if len(thresholds) > 0 {
				values := make([]decimal.Decimal, 0, len(thresholds))
				for _, t := range thresholds {
					d, err := decimal.NewFromString(t)
					if err != nil {
						return fmt.Errorf("--threshold %q: %w", t, err)
					}
					values = append(values, d)
				}
				milestones = calculation.Milestones(run.Result, values)
			}

			money := func(d decimal.Decimal) string { return dec.FormatCurrency(a.cfg.Output.CurrencySymbol, d) }
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, output.RenderTitle(sc.Name+": net worth milestones"))
			if len(milestones) == 0 {
				fmt.Fprintf(out, "\n  No threshold reached within %d years (final net worth %s).\n", params.Years, money(run.Result.Summary.FinalNetWorth))
				return nil
			}
			rows := make([][]string, 0, len(milestones))
			for _, m := range milestones {
				rows = append(rows, []string{money(m.Threshold), fmt.Sprintf("%d", m.Age), fmt.Sprintf("%d", m.Year)})
			}
			fmt.Fprint(out, output.RenderTable(output.Table{Headers: []string{"Net worth", "Age", "Year"}, Rows: rows}))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringSliceVar(&thresholds, "threshold", nil, "Net-worth thresholds (repeatable); defaults to the configured milestones")
	return cmd
}
