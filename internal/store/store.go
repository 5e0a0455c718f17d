// Package store persists scenario records keyed by a stable id.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lifepath/projector/internal/domain"
)

// ErrNotFound is returned when no scenario has the requested id.
var ErrNotFound = errors.New("scenario not found")

// errMissingID rejects writes of records without identity.
var errMissingID = errors.New("scenario id is required")

// Store is a keyed collection of scenarios. Implementations are safe for
// concurrent use; concurrent saves of one id are last-writer-wins.
type Store interface {
	// Get returns a copy of the scenario with the given id.
	Get(ctx context.Context, id string) (*domain.Scenario, error)
	// List returns every scenario ordered by creation time.
	List(ctx context.Context) ([]domain.Scenario, error)
	// Put inserts or replaces the scenario with s.ID.
	Put(ctx context.Context, s domain.Scenario) error
	// Delete removes the scenario, returning ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverJSON   = "json"
)

// Open constructs a store for the named driver. path is ignored by the
// memory driver.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverJSON:
		return OpenJSONFile(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q (available: %s, %s, %s)", driver, DriverMemory, DriverSQLite, DriverJSON)
	}
}

// sortByCreation orders scenarios oldest first, by id within the same instant.
func sortByCreation(scenarios []domain.Scenario) {
	sort.SliceStable(scenarios, func(i, j int) bool {
		a, b := scenarios[i], scenarios[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
