// Package service ties scenario storage to the simulation engine.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/lifepath/projector/internal/calculation"
	"github.com/lifepath/projector/internal/domain"
	"github.com/lifepath/projector/internal/store"
	"github.com/shopspring/decimal"
)

// Limits bound the work a single call may request. Zero disables a limit.
type Limits struct {
	MaxYears       int
	MaxSweepPoints int
}

// DefaultLimits apply when no WithLimits option is given.
var DefaultLimits = Limits{MaxYears: 150, MaxSweepPoints: 200}

// Service manages scenarios and produces reports for them.
type Service struct {
	store      store.Store
	logger     Logger
	milestones []decimal.Decimal
	limits     Limits
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger (default NopLogger).
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMilestones sets the net-worth thresholds reported with each run.
func WithMilestones(thresholds []decimal.Decimal) Option {
	return func(s *Service) {
		if len(thresholds) > 0 {
			s.milestones = append([]decimal.Decimal(nil), thresholds...)
		}
	}
}

// WithLimits sets the per-call work limits.
func WithLimits(l Limits) Option {
	return func(s *Service) {
		s.limits = l
	}
}

// New creates a service over the given store.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:      st,
		logger:     NopLogger{},
		milestones: calculation.DefaultMilestones,
		limits:     DefaultLimits,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limits returns the configured work limits.
func (s *Service) Limits() Limits { return s.limits }

// checkYears rejects horizons above the configured maximum.
func (s *Service) checkYears(params domain.SimulationParameters) error {
	if s.limits.MaxYears > 0 && params.Years > s.limits.MaxYears {
		return fmt.Errorf("%w: years must not exceed %d, got %d", domain.ErrInvalidScenario, s.limits.MaxYears, params.Years)
	}
	return nil
}

// Milestones returns the configured thresholds.
func (s *Service) Milestones() []decimal.Decimal {
	return append([]decimal.Decimal(nil), s.milestones...)
}

// CreateScenario validates and stores a new scenario, assigning its id and
// timestamps. Any id on the input is ignored.
func (s *Service) CreateScenario(ctx context.Context, sc domain.Scenario) (*domain.Scenario, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	now := nowFunc()
	sc = sc.Clone()
	sc.ID = newID()
	sc.CreatedAt = now
	sc.UpdatedAt = now
	if err := s.store.Put(ctx, sc); err != nil {
		return nil, fmt.Errorf("creating scenario: %w", err)
	}
	s.logger.Infof("created scenario %s (%q)", sc.ID, sc.Name)
	return &sc, nil
}

// UpdateScenario replaces the stored fields of an existing scenario while its
// id and creation time stay fixed.
func (s *Service) UpdateScenario(ctx context.Context, id string, sc domain.Scenario) (*domain.Scenario, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sc = sc.Clone()
	sc.ID = existing.ID
	sc.CreatedAt = existing.CreatedAt
	sc.UpdatedAt = nowFunc()
	if err := s.store.Put(ctx, sc); err != nil {
		return nil, fmt.Errorf("updating scenario %s: %w", id, err)
	}
	s.logger.Infof("updated scenario %s (%q)", sc.ID, sc.Name)
	return &sc, nil
}

// GetScenario returns the scenario with the given id.
func (s *Service) GetScenario(ctx context.Context, id string) (*domain.Scenario, error) {
	return s.store.Get(ctx, id)
}

// ListScenarios returns every scenario in creation order.
func (s *Service) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	return s.store.List(ctx)
}

// DeleteScenario removes the scenario with the given id.
func (s *Service) DeleteScenario(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("deleted scenario %s", id)
	return nil
}

// Simulate runs a stored scenario and returns a single-run report.
func (s *Service) Simulate(ctx context.Context, id string, params domain.SimulationParameters) (*domain.Report, error) {
	sc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.SimulateScenario(sc, params)
}

// SimulateScenario runs an unstored scenario, such as one loaded from a file.
func (s *Service) SimulateScenario(sc *domain.Scenario, params domain.SimulationParameters) (*domain.Report, error) {
	run, err := s.run(sc, params)
	if err != nil {
		return nil, err
	}
	return &domain.Report{Runs: []domain.ScenarioRun{run}}, nil
}

// Compare runs two stored scenarios under the same parameters.
func (s *Service) Compare(ctx context.Context, firstID, secondID string, params domain.SimulationParameters) (*domain.Report, error) {
	first, err := s.store.Get(ctx, firstID)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", firstID, err)
	}
	second, err := s.store.Get(ctx, secondID)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", secondID, err)
	}
	return s.CompareScenarios(first, second, params)
}

// CompareScenarios simulates both scenarios in parallel and derives their
// comparison.
func (s *Service) CompareScenarios(first, second *domain.Scenario, params domain.SimulationParameters) (*domain.Report, error) {
	var (
		wg   sync.WaitGroup
		runs [2]domain.ScenarioRun
		errs [2]error
	)
	for i, sc := range []*domain.Scenario{first, second} {
		wg.Add(1)
		go func(i int, sc *domain.Scenario) {
			defer wg.Done()
			runs[i], errs[i] = s.run(sc, params)
		}(i, sc)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	cmp, err := calculation.Compare(runs[0].Scenario.Name, runs[0].Result, runs[1].Scenario.Name, runs[1].Result)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("compared %q and %q: net worth difference %s", cmp.First, cmp.Second, cmp.NetWorthDifference.StringFixed(2))
	return &domain.Report{Runs: runs[:], Comparison: cmp}, nil
}

// Sweep runs a sensitivity analysis over one parameter of a stored scenario.
func (s *Service) Sweep(ctx context.Context, id string, params domain.SimulationParameters, parameter string, values []decimal.Decimal) (*domain.Sweep, error) {
	if err := s.checkYears(params); err != nil {
		return nil, err
	}
	if s.limits.MaxSweepPoints > 0 && len(values) > s.limits.MaxSweepPoints {
		return nil, fmt.Errorf("%w: sweep of %d values exceeds %d", domain.ErrInvalidScenario, len(values), s.limits.MaxSweepPoints)
	}
	sc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sweep, err := calculation.Sweep(sc, params, parameter, values)
	if err != nil {
		s.logger.Warnf("sweep of %s over %s failed: %v", id, parameter, err)
		return nil, err
	}
	s.logger.Debugf("swept %s over %d values of %s", id, len(values), parameter)
	return sweep, nil
}

func (s *Service) run(sc *domain.Scenario, params domain.SimulationParameters) (domain.ScenarioRun, error) {
	if sc == nil {
		return domain.ScenarioRun{}, fmt.Errorf("%w: scenario is nil", domain.ErrInvalidScenario)
	}
	if err := s.checkYears(params); err != nil {
		return domain.ScenarioRun{}, err
	}
	result, err := calculation.Simulate(sc, params)
	if err != nil {
		s.logger.Warnf("simulation of %q rejected: %v", sc.Name, err)
		return domain.ScenarioRun{}, err
	}
	s.logger.Debugf("simulated %q over %d years: final net worth %s", sc.Name, params.Years, result.Summary.FinalNetWorth.StringFixed(2))
	return calculation.BuildRun(sc, params, result, s.milestones), nil
}
