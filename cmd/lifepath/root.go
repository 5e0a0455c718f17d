package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lifepath/projector/internal/config"
	"github.com/lifepath/projector/internal/service"
	"github.com/lifepath/projector/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	storeType  string
	storePath  string
}

// app is the per-invocation wiring: settings, logger, store and service.
type app struct {
	cfg   config.Settings
	log   *logrus.Logger
	store store.Store
	svc   *service.Service
}

func (a *app) Close() error { return a.store.Close() }

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "lifepath",
		Short: "Scenario-driven personal finance projector",
		Long: "Project income, spending, savings, debt payoff and net worth year by year\n" +
			"for one or more life scenarios, and compare them side by side.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default "+config.ConfigPath()+")")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&g.storeType, "store", "", "Scenario store: memory, sqlite or json")
	pf.StringVar(&g.storePath, "store-path", "", "Scenario store file")

	root.AddCommand(
		newScenarioCmd(g),
		newSimulateCmd(g),
		newCompareCmd(g),
		newMilestonesCmd(g),
		newSweepCmd(g),
		newServeCmd(g),
		newConfigCmd(g),
	)
	return root
}

// settings loads the config file and applies flag overrides.
func (g *globalFlags) settings() (config.Settings, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if g.storeType != "" {
		cfg.Store.Driver = g.storeType
	}
	if g.storePath != "" {
		cfg.Store.Path = g.storePath
	}
	return cfg, cfg.Validate()
}

// open builds the app for one command run. Callers must Close it.
func (g *globalFlags) open(cmd *cobra.Command) (*app, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	log.Debugf("using %s store at %q", cfg.Store.Driver, cfg.Store.Path)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithLimits(service.Limits{MaxYears: cfg.Limits.MaxYears, MaxSweepPoints: cfg.Limits.MaxSweepPoints}),
	}
	if len(cfg.Output.Milestones) > 0 {
		opts = append(opts, service.WithMilestones(cfg.Output.Milestones))
	}
	return &app{cfg: cfg, log: log, store: st, svc: service.New(st, opts...)}, nil
}

func newLogger(cfg config.LogSettings, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", cfg.Format)
	}
	return log, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
