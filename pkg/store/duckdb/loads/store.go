package loads

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/finsync/pkg/models/store"
	"github.com/de-tools/finsync/pkg/store/duckdb"
)

// Store keeps a log of the times the record store was seeded.
type Store interface {
	Record(ctx context.Context, run store.LoadRun) error
	Last(ctx context.Context) (*store.LoadRun, error)
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{db: db}, nil
}

func (s *defaultStore) Record(ctx context.Context, run store.LoadRun) error {
	query := `INSERT INTO load_runs (source, records_count, first_date, last_date, loaded_at) VALUES (?, ?, ?, ?, ?)`
	args := []interface{}{run.Source, run.RecordsCount, run.FirstDate, run.LastDate, run.LoadedAt}

	var err error
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = s.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("insert load run: %w", err)
	}
	return nil
}

// Last returns the most recent load run, or nil when the store was never seeded.
func (s *defaultStore) Last(ctx context.Context) (*store.LoadRun, error) {
	query := `
		SELECT source, records_count, first_date, last_date, loaded_at
		FROM load_runs
		ORDER BY loaded_at DESC
		LIMIT 1`

	var (
		run         store.LoadRun
		first, last sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&run.Source, &run.RecordsCount, &first, &last, &run.LoadedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last load run: %w", err)
	}
	run.FirstDate = first.String
	run.LastDate = last.String
	return &run, nil
}
