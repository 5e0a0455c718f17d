package store

import (
	"context"
	"sync"

	"github.com/lifepath/projector/internal/domain"
)

// Memory is an in-process store for tests and throwaway sessions.
type Memory struct {
	mu        sync.RWMutex
	scenarios map[string]domain.Scenario
}

func NewMemory() *Memory {
	return &Memory{scenarios: make(map[string]domain.Scenario)}
}

func (m *Memory) Get(_ context.Context, id string) (*domain.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := s.Clone()
	return &out, nil
}

func (m *Memory) List(_ context.Context) ([]domain.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Scenario, 0, len(m.scenarios))
	for _, s := range m.scenarios {
		out = append(out, s.Clone())
	}
	sortByCreation(out)
	return out, nil
}

func (m *Memory) Put(_ context.Context, s domain.Scenario) error {
	if s.ID == "" {
		return errMissingID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios[s.ID] = s.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scenarios[id]; !ok {
		return ErrNotFound
	}
	delete(m.scenarios, id)
	return nil
}

func (m *Memory) Close() error { return nil }
