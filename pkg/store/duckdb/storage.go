package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const DailyRecordsSchema = `
	CREATE TABLE IF NOT EXISTS daily_records (
		date VARCHAR NOT NULL PRIMARY KEY,
		expected_amount DOUBLE NOT NULL,
		received_amount DOUBLE NOT NULL,
		difference DOUBLE NOT NULL,
		status VARCHAR NOT NULL,
		mastercard_amount DOUBLE NOT NULL DEFAULT 0,
		visa_amount DOUBLE NOT NULL DEFAULT 0,
		pix_amount DOUBLE NOT NULL DEFAULT 0,
		boleto_amount DOUBLE NOT NULL DEFAULT 0
	);
`

const TransactionsSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR NOT NULL,
		date VARCHAR NOT NULL,
		seq INTEGER NOT NULL,
		method VARCHAR NOT NULL,
		amount DOUBLE NOT NULL,
		status VARCHAR NOT NULL,
		PRIMARY KEY (date, seq)
	);
`

const LoadRunsSchema = `
	CREATE TABLE IF NOT EXISTS load_runs (
		source VARCHAR NOT NULL,
		records_count BIGINT NOT NULL,
		first_date VARCHAR,
		last_date VARCHAR,
		loaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	DailyRecordsSchema,
	TransactionsSchema,
	LoadRunsSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

// NewDB opens a DuckDB database at settings.DbPath (":memory:" keeps it in
// process) and makes sure the schema exists on every new connection.
func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}
	path := settings.DbPath
	if path == "" {
		path = ":memory:"
	}
	dsn := fmt.Sprintf("%s?threads=%d", path, threads)

	c, err := duckdb.NewConnector(dsn, func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
