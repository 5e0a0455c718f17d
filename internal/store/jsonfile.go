package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/lifepath/projector/internal/domain"
)

// document is the on-disk layout of a JSON file store.
type document struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

// JSONFile keeps the whole collection in one JSON document, indexed by id in
// memory and rewritten atomically after every change.
type JSONFile struct {
	path string

	mu        sync.RWMutex
	scenarios map[string]domain.Scenario
}

// OpenJSONFile loads the document at path. A missing file is an empty store;
// it is created on the first write.
func OpenJSONFile(path string) (*JSONFile, error) {
	f := &JSONFile{path: path, scenarios: make(map[string]domain.Scenario)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}
	if len(data) == 0 {
		return f, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing store file %s: %w", path, err)
	}
	for _, s := range doc.Scenarios {
		if s.ID == "" {
			return nil, fmt.Errorf("parsing store file %s: %w", path, errMissingID)
		}
		f.scenarios[s.ID] = s
	}
	return f, nil
}

func (f *JSONFile) Get(_ context.Context, id string) (*domain.Scenario, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := s.Clone()
	return &out, nil
}

func (f *JSONFile) List(_ context.Context) ([]domain.Scenario, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sortedLocked(), nil
}

func (f *JSONFile) Put(_ context.Context, s domain.Scenario) error {
	if s.ID == "" {
		return errMissingID
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, existed := f.scenarios[s.ID]
	f.scenarios[s.ID] = s.Clone()
	if err := f.flushLocked(); err != nil {
		if existed {
			f.scenarios[s.ID] = prev
		} else {
			delete(f.scenarios, s.ID)
		}
		return err
	}
	return nil
}

func (f *JSONFile) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, ok := f.scenarios[id]
	if !ok {
		return ErrNotFound
	}
	delete(f.scenarios, id)
	if err := f.flushLocked(); err != nil {
		f.scenarios[id] = prev
		return err
	}
	return nil
}

func (f *JSONFile) Close() error { return nil }

func (f *JSONFile) sortedLocked() []domain.Scenario {
	out := make([]domain.Scenario, 0, len(f.scenarios))
	for _, s := range f.scenarios {
		out = append(out, s.Clone())
	}
	sortByCreation(out)
	return out
}

// flushLocked writes to a sibling temp file and renames it over the target.
func (f *JSONFile) flushLocked() error {
	data, err := json.MarshalIndent(document{Scenarios: f.sortedLocked()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}
