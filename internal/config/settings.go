package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
)

const appName = "lifepath"

// Settings holds all application configuration.
type Settings struct {
	Simulation SimulationSettings `toml:"simulation"`
	Store      StoreSettings      `toml:"store"`
	Server     ServerSettings     `toml:"server"`
	Output     OutputSettings     `toml:"output"`
	Log        LogSettings        `toml:"log"`
	Limits     LimitSettings      `toml:"limits"`
}

// SimulationSettings are the default run parameters.
type SimulationSettings struct {
	Years         int             `toml:"years"`
	InflationRate decimal.Decimal `toml:"inflation_rate"`
	TaxRate       decimal.Decimal `toml:"tax_rate"`
	Policies      domain.Policies `toml:"policies"`
}

// StoreSettings selects the scenario store.
type StoreSettings struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path,omitempty"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Listen         string   `toml:"listen"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
}

// OutputSettings controls report rendering.
type OutputSettings struct {
	Format         string            `toml:"format"`
	CurrencySymbol string            `toml:"currency_symbol"`
	Milestones     []decimal.Decimal `toml:"milestones,omitempty"`
}

// LimitSettings bound the work one request or command may ask for.
type LimitSettings struct {
	MaxYears       int `toml:"max_years"`
	MaxSweepPoints int `toml:"max_sweep_points"`
}

// LogSettings controls logrus output.
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	p := domain.DefaultParameters()
	return Settings{
		Simulation: SimulationSettings{
			Years:         p.Years,
			InflationRate: p.InflationRate,
			TaxRate:       p.TaxRate,
		},
		Store: StoreSettings{
			Driver: "sqlite",
			Path:   filepath.Join(DataDir(), "scenarios.db"),
		},
		Server: ServerSettings{
			Listen: "127.0.0.1:8080",
		},
		Output: OutputSettings{
			Format:         "console",
			CurrencySymbol: "$",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Limits: LimitSettings{
			MaxYears:       150,
			MaxSweepPoints: 200,
		},
	}
}

// Parameters returns the configured defaults as run parameters.
func (s Settings) Parameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		Years:         s.Simulation.Years,
		InflationRate: s.Simulation.InflationRate,
		TaxRate:       s.Simulation.TaxRate,
		Policies:      s.Simulation.Policies,
	}
}

// Validate checks the settings a process cannot start without.
func (s Settings) Validate() error {
	if err := s.Parameters().Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	switch s.Store.Driver {
	case "memory":
	case "sqlite", "json":
		if s.Store.Path == "" {
			return fmt.Errorf("store: path is required for driver %q", s.Store.Driver)
		}
	default:
		return fmt.Errorf("store: unknown driver %q", s.Store.Driver)
	}
	if s.Limits.MaxYears <= 0 || s.Limits.MaxSweepPoints <= 0 {
		return fmt.Errorf("limits: max_years and max_sweep_points must be positive")
	}
	if s.Simulation.Years > s.Limits.MaxYears {
		return fmt.Errorf("simulation: years %d exceeds limits.max_years %d", s.Simulation.Years, s.Limits.MaxYears)
	}
	for _, m := range s.Output.Milestones {
		if !m.IsPositive() {
			return fmt.Errorf("output: milestone thresholds must be positive, got %s", m)
		}
	}
	return nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG-compliant data directory for stores.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path (ConfigPath when empty), returning
// defaults if it doesn't exist.
func Load(path string) (Settings, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path (ConfigPath when empty).
func Save(cfg Settings, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists at path (ConfigPath when empty).
func Exists(path string) bool {
	if path == "" {
		path = ConfigPath()
	}
	_, err := os.Stat(path)
	return err == nil
}
