package main

import (
	"fmt"
	"strings"

	"github.com/lifepath/projector/internal/calculation"
	"github.com/lifepath/projector/internal/domain"
	"github.com/lifepath/projector/internal/output"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSweepCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	var (
		parameter      string
		from, to, step string
		values         []string
	)
	cmd := &cobra.Command{
		Use:   "sweep <id|file>",
		Short: "Run one scenario across a range of values for one parameter",
		Long: "Run one scenario across a range of values for one parameter.\n" +
			"Parameters: " + strings.Join(calculation.SweepParameters(), ", "),
		Example: "  lifepath sweep 3f2a... --parameter savings_rate --from 0.1 --to 0.5 --step 0.05",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			points, err := sweepValues(values, from, to, step, a.svc.Limits().MaxSweepPoints)
			if err != nil {
				return err
			}

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
			var sweep *domain.Sweep
			if isFile(args[0]) {
				sweep, err = calculation.Sweep(sc, params, parameter, points)
			} else {
				sweep, err = a.svc.Sweep(cmd.Context(), sc.ID, params, parameter, points)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderSweep(sweep, a.cfg.Output.CurrencySymbol))
			return nil
		},
	}
	f.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&parameter, "parameter", "", "Parameter to vary")
	fl.StringVar(&from, "from", "", "First value")
	fl.StringVar(&to, "to", "", "Last value (inclusive)")
	fl.StringVar(&step, "step", "", "Increment")
	fl.StringSliceVar(&values, "values", nil, "Explicit values instead of a range")
	_ = cmd.MarkFlagRequired("parameter")
	return cmd
}

func sweepValues(values []string, from, to, step string, limit int) ([]decimal.Decimal, error) {
	if len(values) > 0 {
		out := make([]decimal.Decimal, 0, len(values))
		for _, v := range values {
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("--values %q: %w", v, err)
			}
			out = append(out, d)
		}
		return out, nil
	}
	if from == "" || to == "" || step == "" {
		return nil, fmt.Errorf("give --values or all of --from, --to and --step")
	}
	var bounds [3]decimal.Decimal
	for i, s := range []string{from, to, step} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("range bound %q: %w", s, err)
		}
		bounds[i] = d
	}
	return calculation.SweepRange(bounds[0], bounds[1], bounds[2], limit)
}

func renderSweep(sweep *domain.Sweep, symbol string) string {
	rows := make([][]string, 0, len(sweep.Points))
	for _, p := range sweep.Points {
		fi := "-"
		if p.Summary.FIAge != nil {
			fi = fmt.Sprintf("%d", *p.Summary.FIAge)
		}
		rows = append(rows, []string{
			p.Value.String(),
			dec.FormatCurrency(symbol, p.Summary.FinalNetWorth),
			dec.FormatCurrency(symbol, p.Summary.FinalInvestmentPortfolio),
			fi,
			output.FormatPercentage(p.Summary.InvestmentROI),
		})
	}
	return output.RenderTitle(fmt.Sprintf("%s: %s sensitivity", sweep.ScenarioName, sweep.Parameter)) + "\n" +
		output.RenderTable(output.Table{
			Headers: []string{sweep.Parameter, "Net worth", "Portfolio", "FI age", "ROI"},
			Rows:    rows,
		})
}
