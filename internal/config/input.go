package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is a scenario document: one or more scenarios plus optional
// run parameters. A document holding a single bare scenario is accepted too.
type ScenarioFile struct {
	Parameters *domain.SimulationParameters `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Scenarios  []domain.Scenario            `yaml:"scenarios" json:"scenarios"`
}

// InputParser handles parsing of scenario documents
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario document from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// LoadFromReader loads a scenario document from r.
func (ip *InputParser) LoadFromReader(r io.Reader) (*ScenarioFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document. JSON is parsed as the
// YAML subset it is.
func (ip *InputParser) Parse(data []byte) (*ScenarioFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("scenario document is empty")
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Scenarios) == 0 {
		var single domain.Scenario
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if single.Name != "" {
			file.Scenarios = []domain.Scenario{single}
		}
	}

	if err := ip.ValidateScenarioFile(&file); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &file, nil
}

// ValidateScenarioFile validates every scenario and the parameters, if any
func (ip *InputParser) ValidateScenarioFile(file *ScenarioFile) error {
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i := range file.Scenarios {
		if err := file.Scenarios[i].Validate(); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}
	if file.Parameters != nil {
		if err := file.Parameters.Validate(); err != nil {
			return fmt.Errorf("parameters validation failed: %w", err)
		}
	}
	return nil
}

// Find returns the scenario with the given name, or the only one when name
// is empty.
func (f *ScenarioFile) Find(name string) (*domain.Scenario, error) {
	if name == "" {
		if len(f.Scenarios) == 1 {
			return &f.Scenarios[0], nil
		}
		return nil, fmt.Errorf("document holds %d scenarios; pick one by name", len(f.Scenarios))
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == name {
			return &f.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in document", name)
}

// WriteScenarioFile encodes a scenario document as YAML
func WriteScenarioFile(w io.Writer, file *ScenarioFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// CreateExampleScenarioFile returns a document that exercises every event
// type, suitable as a starting template.
func (ip *InputParser) CreateExampleScenarioFile() *ScenarioFile {
	params := domain.DefaultParameters()
	return &ScenarioFile{
		Parameters: &params,
		Scenarios: []domain.Scenario{
			{
				Name:                 "Software Engineer Path",
				StartingAge:          22,
				StartingSalary:       decimal.NewFromInt(60000),
				SalaryGrowthRate:     decimal.NewFromFloat(0.03),
				MonthlyExpenses:      decimal.NewFromInt(3000),
				SavingsRate:          decimal.NewFromFloat(0.15),
				InvestmentReturnRate: decimal.NewFromFloat(0.07),
				StudentDebt:          decimal.NewFromInt(30000),
				MajorExpenses: []domain.MajorExpense{
					{Name: "Wedding", Amount: decimal.NewFromInt(20000), Year: 4},
					{Name: "House down payment", Amount: decimal.NewFromInt(50000), Year: 7},
				},
				CareerChanges: []domain.CareerChange{
					{Year: 4, NewSalary: decimal.NewFromInt(90000), NewGrowthRate: decimal.NewFromFloat(0.04)},
				},
			},
			{
				Name:                 "Graduate School Path",
				StartingAge:          22,
				StartingSalary:       decimal.NewFromInt(25000),
				SalaryGrowthRate:     decimal.NewFromFloat(0.02),
				MonthlyExpenses:      decimal.NewFromInt(2200),
				SavingsRate:          decimal.NewFromFloat(0.1),
				InvestmentReturnRate: decimal.NewFromFloat(0.07),
				StudentDebt:          decimal.NewFromInt(80000),
				CareerChanges: []domain.CareerChange{
					{Year: 3, NewSalary: decimal.NewFromInt(110000), NewGrowthRate: decimal.NewFromFloat(0.045)},
				},
			},
		},
	}
}
