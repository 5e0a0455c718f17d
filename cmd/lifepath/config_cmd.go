package main

import (
	"fmt"
	"strings"

	"github.com/lifepath/projector/internal/config"
	"github.com/lifepath/projector/internal/output"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the configuration",
	}
	cmd.AddCommand(newConfigShowCmd(g), newConfigInitCmd(g))
	return cmd
}

func newConfigShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.settings()
			if err != nil {
				return err
			}
			path := g.configPath
			if path == "" {
				path = config.ConfigPath()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Config file: %s\n", path)
			if config.Exists(path) {
				fmt.Fprintln(out, "  Status: loaded")
			} else {
				fmt.Fprintln(out, "  Status: using defaults (no config file)")
			}
			fmt.Fprintln(out)

			s := cfg.Simulation
			policies := s.Policies.WithDefaults()
			fmt.Fprintln(out, "  [Simulation]")
			fmt.Fprintf(out, "    Years:             %d\n", s.Years)
			fmt.Fprintf(out, "    Inflation rate:    %s\n", output.FormatRate(s.InflationRate))
			fmt.Fprintf(out, "    Tax rate:          %s\n", output.FormatRate(s.TaxRate))
			fmt.Fprintf(out, "    Salary growth:     %s\n", policies.SalaryGrowth)
			fmt.Fprintf(out, "    Investment growth: %s\n", policies.InvestmentGrowth)
			fmt.Fprintf(out, "    Debt amortization: %s\n", policies.DebtAmortization)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Store]")
			fmt.Fprintf(out, "    Driver: %s\n", cfg.Store.Driver)
			if cfg.Store.Path != "" {
				fmt.Fprintf(out, "    Path:   %s\n", cfg.Store.Path)
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Server]")
			fmt.Fprintf(out, "    Listen:          %s\n", cfg.Server.Listen)
			if len(cfg.Server.AllowedOrigins) > 0 {
				fmt.Fprintf(out, "    Allowed origins: %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Output]")
			fmt.Fprintf(out, "    Format:     %s\n", cfg.Output.Format)
			fmt.Fprintf(out, "    Currency:   %s\n", cfg.Output.CurrencySymbol)
			if len(cfg.Output.Milestones) > 0 {
				ms := make([]string, 0, len(cfg.Output.Milestones))
				for _, m := range cfg.Output.Milestones {
					ms = append(ms, dec.FormatCurrency(cfg.Output.CurrencySymbol, m))
				}
				fmt.Fprintf(out, "    Milestones: %s\n", strings.Join(ms, ", "))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Limits]")
			fmt.Fprintf(out, "    Max years:        %d\n", cfg.Limits.MaxYears)
			fmt.Fprintf(out, "    Max sweep points: %d\n", cfg.Limits.MaxSweepPoints)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Log]")
			fmt.Fprintf(out, "    Level:  %s\n", cfg.Log.Level)
			fmt.Fprintf(out, "    Format: %s\n", cfg.Log.Format)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  Run `lifepath config init` to write a config file.")
			return nil
		},
	}
}

func newConfigInitCmd(g *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := g.configPath
			if path == "" {
				path = config.ConfigPath()
			}
			if config.Exists(path) && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.DefaultSettings(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
