package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/finsync/pkg/adapters"
	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/models/store"
	"github.com/de-tools/finsync/pkg/store/duckdb"
	"github.com/de-tools/finsync/pkg/store/duckdb/loads"
	"github.com/de-tools/finsync/pkg/store/duckdb/records"
	"github.com/rs/zerolog"
)

const (
	minDate = "0000-01-01"
	maxDate = "9999-12-31"
)

// StoreSource reads records back from the DuckDB record store.
type StoreSource struct {
	db      *sql.DB
	records records.Store
}

func NewStoreSource(db *sql.DB, recordStore records.Store) *StoreSource {
	return &StoreSource{db: db, records: recordStore}
}

func (s *StoreSource) Name() string {
	return KindDuckDB
}

func (s *StoreSource) Records(ctx context.Context) ([]domain.DailyRecord, error) {
	rows, err := s.records.GetRange(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("read stored records: %w", err)
	}
	return adapters.MapStoreRecordsToDomain(rows), nil
}

func (s *StoreSource) Range(ctx context.Context, r domain.DateRange) ([]domain.DailyRecord, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.records.GetRange(ctx, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("read stored records %s to %s: %w", r.Start, r.End, err)
	}
	return adapters.MapStoreRecordsToDomain(rows), nil
}

func (s *StoreSource) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Seeder fills an empty record store from another source and logs the run.
type Seeder struct {
	db      *sql.DB
	records records.Store
	loads   loads.Store
	from    Source
	now     func() time.Time
}

func NewSeeder(db *sql.DB, recordStore records.Store, loadStore loads.Store, from Source) *Seeder {
	return &Seeder{
		db:      db,
		records: recordStore,
		loads:   loadStore,
		from:    from,
		now:     time.Now,
	}
}

// Seed copies every record of the seeding source into the store when the
// store is empty. It reports whether anything was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	logger := zerolog.Ctx(ctx)

	count, err := s.records.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		logger.Debug().Int64("records", count).Msg("record store already seeded")
		return false, nil
	}

	recs, err := s.from.Records(ctx)
	if err != nil {
		return false, fmt.Errorf("load seed records from %s: %w", s.from.Name(), err)
	}
	if len(recs) == 0 {
		return false, nil
	}

	run := store.LoadRun{
		Source:       s.from.Name(),
		RecordsCount: int64(len(recs)),
		FirstDate:    recs[0].Date,
		LastDate:     recs[len(recs)-1].Date,
		LoadedAt:     s.now().UTC(),
	}

	err = duckdb.RunInTx(ctx, s.db, func(ctx context.Context) error {
		if err := s.records.Add(ctx, adapters.MapDomainRecordsToStore(recs)); err != nil {
			return fmt.Errorf("store seed records: %w", err)
		}
		return s.loads.Record(ctx, run)
	})
	if err != nil {
		return false, err
	}

	logger.Info().
		Str("source", run.Source).
		Int64("records", run.RecordsCount).
		Str("first_date", run.FirstDate).
		Str("last_date", run.LastDate).
		Msg("record store seeded")
	return true, nil
}
