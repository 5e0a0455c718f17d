package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/lifepath/projector/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite keeps one row per scenario with the full record as a JSON document.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path. ":memory:" gives a
// private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating store dir: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}
	if path == ":memory:" {
		// Every connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Get(ctx context.Context, id string) (*domain.Scenario, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, "SELECT document FROM scenarios WHERE id = ?", id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", id, err)
	}
	var sc domain.Scenario
	if err := json.Unmarshal([]byte(doc), &sc); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", id, err)
	}
	return &sc, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.Scenario, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, document FROM scenarios ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Scenario{}
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		var sc domain.Scenario
		if err := json.Unmarshal([]byte(doc), &sc); err != nil {
			return nil, fmt.Errorf("decoding scenario %s: %w", id, err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (s *SQLite) Put(ctx context.Context, sc domain.Scenario) error {
	if sc.ID == "" {
		return errMissingID
	}
	doc, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encoding scenario %s: %w", sc.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT OR REPLACE INTO scenarios
		(id, name, created_at, updated_at, document)
		VALUES (?, ?, ?, ?, ?)`,
		sc.ID, sc.Name, formatTime(sc.CreatedAt), formatTime(sc.UpdatedAt), string(doc),
	)
	if err != nil {
		return fmt.Errorf("saving scenario %s: %w", sc.ID, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scenarios WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting scenario %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
