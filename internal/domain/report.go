package domain

import "github.com/shopspring/decimal"

// FIOutcome classifies how two runs compare on financial independence.
type FIOutcome string

const (
	FIBothAchieved    FIOutcome = "both_achieved"
	FIFirstOnly       FIOutcome = "first_only"
	FISecondOnly      FIOutcome = "second_only"
	FINeitherAchieved FIOutcome = "neither_achieved"
)

// Side identifies one run of a comparison independent of its name.
type Side string

const (
	SideFirst  Side = "first"
	SideSecond Side = "second"
)

// FIComparison reports which run reached FI and which did so faster.
// Winner is empty when neither achieved FI or both did at the same age.
type FIComparison struct {
	Outcome     FIOutcome `yaml:"outcome" json:"outcome"`
	Winner      string    `yaml:"winner,omitempty" json:"winner,omitempty"`
	WinnerSide  Side      `yaml:"winner_side,omitempty" json:"winner_side,omitempty"`
	FirstAge    *int      `yaml:"first_age,omitempty" json:"first_age,omitempty"`
	SecondAge   *int      `yaml:"second_age,omitempty" json:"second_age,omitempty"`
	YearsFaster int       `yaml:"years_faster,omitempty" json:"years_faster,omitempty"`
}

// NetWorthPoint pairs the two runs' net worth for one year.
type NetWorthPoint struct {
	Year   int             `yaml:"year" json:"year"`
	First  decimal.Decimal `yaml:"first" json:"first"`
	Second decimal.Decimal `yaml:"second" json:"second"`
}

// Crossover marks the year in which the net-worth lead changes hands.
type Crossover struct {
	Year int `yaml:"year" json:"year"` // 1-based year in which the lead changes
	// Fraction is the linear interpolation point within the year, in [0,1].
	Fraction decimal.Decimal `yaml:"fraction" json:"fraction"`
	// Leader is the scenario ahead at the end of that year; empty when level.
	Leader     string `yaml:"leader,omitempty" json:"leader,omitempty"`
	LeaderSide Side   `yaml:"leader_side,omitempty" json:"leader_side,omitempty"`
}

// Comparison is the side-by-side derivation for two runs.
type Comparison struct {
	First  string `yaml:"first" json:"first"`
	Second string `yaml:"second" json:"second"`

	// NetWorthDifference is first.final - second.final; positive favours first.
	NetWorthDifference decimal.Decimal `yaml:"net_worth_difference" json:"net_worth_difference"`
	// NetWorthWinner is empty on equal final net worth. The side tells two
	// runs of the same name apart.
	NetWorthWinner             string          `yaml:"net_worth_winner,omitempty" json:"net_worth_winner,omitempty"`
	NetWorthWinnerSide         Side            `yaml:"net_worth_winner_side,omitempty" json:"net_worth_winner_side,omitempty"`
	LifetimeEarningsDifference decimal.Decimal `yaml:"lifetime_earnings_difference" json:"lifetime_earnings_difference"`

	FI        FIComparison    `yaml:"fi" json:"fi"`
	Crossover *Crossover      `yaml:"crossover,omitempty" json:"crossover,omitempty"`
	NetWorth  []NetWorthPoint `yaml:"net_worth" json:"net_worth"`
}

// Milestone is the first year net worth reached a threshold.
type Milestone struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Age       int             `yaml:"age" json:"age"`
	Year      int             `yaml:"year" json:"year"`
}

// Aggregates are lifetime totals derived from the yearly records.
type Aggregates struct {
	Earned           decimal.Decimal `yaml:"earned" json:"earned"`
	Taxes            decimal.Decimal `yaml:"taxes" json:"taxes"`
	LivingExpenses   decimal.Decimal `yaml:"living_expenses" json:"living_expenses"`
	MajorExpenses    decimal.Decimal `yaml:"major_expenses" json:"major_expenses"`
	DebtPaid         decimal.Decimal `yaml:"debt_paid" json:"debt_paid"`
	EmergencyFund    decimal.Decimal `yaml:"emergency_fund" json:"emergency_fund"`
	Invested         decimal.Decimal `yaml:"invested" json:"invested"`
	InvestmentGrowth decimal.Decimal `yaml:"investment_growth" json:"investment_growth"`
	Saved            decimal.Decimal `yaml:"saved" json:"saved"`
	// SavingsRate is saved / after-tax income over the horizon, in percent.
	SavingsRate decimal.Decimal `yaml:"savings_rate" json:"savings_rate"`
}

// ScenarioRun is one scenario simulated under one set of parameters.
type ScenarioRun struct {
	Scenario   Scenario             `yaml:"scenario" json:"scenario"`
	Parameters SimulationParameters `yaml:"parameters" json:"parameters"`
	Result     *SimulationResult    `yaml:"result" json:"result"`
	Milestones []Milestone          `yaml:"milestones,omitempty" json:"milestones,omitempty"`
	Aggregates Aggregates           `yaml:"aggregates" json:"aggregates"`
}

// Report is the unit every output formatter renders: one or more runs and,
// for exactly two, their comparison.
type Report struct {
	Runs       []ScenarioRun `yaml:"runs" json:"runs"`
	Comparison *Comparison   `yaml:"comparison,omitempty" json:"comparison,omitempty"`
}

// SweepPoint is one value of a sensitivity sweep and its run summary.
type SweepPoint struct {
	Value   decimal.Decimal `yaml:"value" json:"value"`
	Summary Summary         `yaml:"summary" json:"summary"`
}

// Sweep is a one-parameter sensitivity analysis over a base scenario.
type Sweep struct {
	ScenarioName string       `yaml:"scenario_name" json:"scenario_name"`
	Parameter    string       `yaml:"parameter" json:"parameter"`
	Points       []SweepPoint `yaml:"points" json:"points"`
}
