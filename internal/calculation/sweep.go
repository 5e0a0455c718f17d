package calculation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Limit on simulations in flight during a sweep.
const sweepConcurrency = 8

// sweepSetters maps a sweepable parameter name to the field it overrides.
var sweepSetters = map[string]func(*domain.Scenario, *domain.SimulationParameters, decimal.Decimal){
	"inflation_rate":         func(_ *domain.Scenario, p *domain.SimulationParameters, v decimal.Decimal) { p.InflationRate = v },
	"tax_rate":               func(_ *domain.Scenario, p *domain.SimulationParameters, v decimal.Decimal) { p.TaxRate = v },
	"savings_rate":           func(s *domain.Scenario, _ *domain.SimulationParameters, v decimal.Decimal) { s.SavingsRate = v },
	"investment_return_rate": func(s *domain.Scenario, _ *domain.SimulationParameters, v decimal.Decimal) { s.InvestmentReturnRate = v },
	"salary_growth_rate":     func(s *domain.Scenario, _ *domain.SimulationParameters, v decimal.Decimal) { s.SalaryGrowthRate = v },
}

// SweepParameters lists the parameter names Sweep accepts, sorted.
func SweepParameters() []string {
	names := make([]string, 0, len(sweepSetters))
	for name := range sweepSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sweep simulates the scenario once per value of the named parameter and
// returns the summaries in the order of values. Runs execute concurrently;
// each works on its own copy of the scenario. The first invalid value fails
// the whole sweep.
func Sweep(scenario *domain.Scenario, params domain.SimulationParameters, parameter string, values []decimal.Decimal) (*domain.Sweep, error) {
	set, ok := sweepSetters[parameter]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sweep parameter %q (available: %v)", domain.ErrInvalidScenario, parameter, SweepParameters())
	}
	if scenario == nil {
		return nil, fmt.Errorf("%w: scenario is nil", domain.ErrInvalidScenario)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: sweep needs at least one value", domain.ErrInvalidScenario)
	}

	points := make([]domain.SweepPoint, len(values))
	errs := make([]error, len(values))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, sweepConcurrency)
	for i, v := range values {
		semaphore <- struct{}{}
		wg.Add(1)
		go func(i int, v decimal.Decimal) {
			defer wg.Done()
			defer func() { <-semaphore }()

			s := scenario.Clone()
			p := params
			set(&s, &p, v)
			result, err := Simulate(&s, p)
			if err != nil {
				errs[i] = fmt.Errorf("%s=%s: %w", parameter, v, err)
				return
			}
			points[i] = domain.SweepPoint{Value: v, Summary: result.Summary}
		}(i, v)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &domain.Sweep{ScenarioName: scenario.Name, Parameter: parameter, Points: points}, nil
}

// SweepRange expands from..to inclusive in steps of step. Invalid bounds and
// ranges of more than limit values (when limit is positive) are rejected
// before anything is allocated.
func SweepRange(from, to, step decimal.Decimal, limit int) ([]decimal.Decimal, error) {
	if !step.IsPositive() {
		return nil, fmt.Errorf("%w: sweep step must be positive, got %s", domain.ErrInvalidScenario, step)
	}
	if from.GreaterThan(to) {
		return nil, fmt.Errorf("%w: empty sweep range %s..%s", domain.ErrInvalidScenario, from, to)
	}
	if limit > 0 && to.Sub(from).Div(step).GreaterThanOrEqual(decimal.NewFromInt(int64(limit))) {
		return nil, fmt.Errorf("%w: sweep range %s..%s step %s exceeds %d values", domain.ErrInvalidScenario, from, to, step, limit)
	}
	var values []decimal.Decimal
	for v := from; v.LessThanOrEqual(to); v = v.Add(step) {
		values = append(values, v)
	}
	return values, nil
}
