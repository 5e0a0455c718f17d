package main

import (
	"fmt"
	"os"

	"github.com/lifepath/projector/internal/config"
	"github.com/lifepath/projector/internal/domain"
	"github.com/lifepath/projector/internal/output"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newScenarioCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"scenarios"},
		Short:   "Manage stored scenarios",
	}
	cmd.AddCommand(
		newScenarioAddCmd(g),
		newScenarioListCmd(g),
		newScenarioShowCmd(g),
		newScenarioUpdateCmd(g),
		newScenarioDeleteCmd(g),
		newScenarioExampleCmd(),
	)
	return cmd
}

func newScenarioAddCmd(g *globalFlags) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Store the scenarios of a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			scenarios := file.Scenarios
			if name != "" {
				sc, err := file.Find(name)
				if err != nil {
					return err
				}
				scenarios = []domain.Scenario{*sc}
			}

			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, sc := range scenarios {
				created, err := a.svc.CreateScenario(cmd.Context(), sc)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", created.ID, created.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Only add the scenario with this name")
	return cmd
}

func newScenarioListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored scenarios in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			scenarios, err := a.svc.ListScenarios(cmd.Context())
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scenarios stored. Add one with `lifepath scenario add <file>`.")
				return nil
			}
			rows := make([][]string, 0, len(scenarios))
			for _, sc := range scenarios {
				rows = append(rows, []string{
					sc.ID,
					sc.Name,
					fmt.Sprintf("%d", sc.StartingAge),
					dec.FormatCurrency(a.cfg.Output.CurrencySymbol, sc.StartingSalary),
					sc.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(output.Table{
				Headers: []string{"ID", "Name", "Age", "Salary", "Created"},
				Rows:    rows,
			}))
			return nil
		},
	}
}

func newScenarioShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored scenario as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			sc, err := a.svc.GetScenario(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(sc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newScenarioUpdateCmd(g *globalFlags) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "update <id> <file>",
		Short: "Replace a stored scenario with one from a file, keeping its id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(args[1])
			if err != nil {
				return err
			}
			sc, err := file.Find(name)
			if err != nil {
				return err
			}

			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			updated, err := a.svc.UpdateScenario(cmd.Context(), args[0], *sc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", updated.ID, updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Scenario name within a multi-scenario file")
	return cmd
}

func newScenarioDeleteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete stored scenarios",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, id := range args {
				if err := a.svc.DeleteScenario(cmd.Context(), id); err != nil {
					return fmt.Errorf("scenario %s: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			}
			return nil
		},
	}
}

func newScenarioExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file := config.NewInputParser().CreateExampleScenarioFile()
			if out == "" {
				return config.WriteScenarioFile(cmd.OutOrStdout(), file)
			}
			f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := config.WriteScenarioFile(f, file); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenarios written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout (must not exist)")
	return cmd
}
