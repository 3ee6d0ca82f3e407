package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/finsync/pkg/models/store"
	"github.com/de-tools/finsync/pkg/store/duckdb"
)

var ErrNotFound = errors.New("record not found")

// Store persists daily reconciliation records and their transactions in DuckDB.
type Store interface {
	Add(ctx context.Context, records []store.DailyRecord) error
	GetRange(ctx context.Context, start, end string) ([]store.DailyRecord, error)
	Get(ctx context.Context, date string) (*store.DailyRecord, error)
	Count(ctx context.Context) (int64, error)
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

const (
	insertRecordQuery = `
		INSERT INTO daily_records (
			date, expected_amount, received_amount, difference, status,
			mastercard_amount, visa_amount, pix_amount, boleto_amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertTransactionQuery = `
		INSERT INTO transactions (id, date, seq, method, amount, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	selectRecordsQuery = `
		SELECT date, expected_amount, received_amount, difference, status,
			mastercard_amount, visa_amount, pix_amount, boleto_amount
		FROM daily_records
		WHERE date >= ? AND date <= ?
		ORDER BY date`

	selectTransactionsQuery = `
		SELECT id, date, seq, method, amount, status
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date, seq`
)

// Add inserts records in the transaction carried by ctx, or in a new one.
func (s *recordStore) Add(ctx context.Context, records []store.DailyRecord) error {
	if len(records) == 0 {
		return nil
	}

	if duckdb.GetTransaction(ctx) == nil {
		return duckdb.RunInTx(ctx, s.db, func(ctx context.Context) error {
			return s.add(ctx, duckdb.GetTransaction(ctx), records)
		})
	}
	return s.add(ctx, duckdb.GetTransaction(ctx), records)
}

func (s *recordStore) add(ctx context.Context, tx *sql.Tx, records []store.DailyRecord) error {
	recordStmt, err := tx.PrepareContext(ctx, insertRecordQuery)
	if err != nil {
		return fmt.Errorf("prepare record statement: %w", err)
	}
	defer recordStmt.Close()

	txStmt, err := tx.PrepareContext(ctx, insertTransactionQuery)
	if err != nil {
		return fmt.Errorf("prepare transaction statement: %w", err)
	}
	defer txStmt.Close()

	for _, r := range records {
		_, err := recordStmt.ExecContext(ctx,
			r.Date,
			r.ExpectedAmount,
			r.ReceivedAmount,
			r.Difference,
			r.Status,
			r.MastercardAmount,
			r.VisaAmount,
			r.PIXAmount,
			r.BoletoAmount,
		)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", r.Date, err)
		}

		for _, t := range r.Transactions {
			_, err := txStmt.ExecContext(ctx, t.ID, r.Date, t.Seq, t.Method, t.Amount, t.Status)
			if err != nil {
				return fmt.Errorf("insert transaction %s: %w", t.ID, err)
			}
		}
	}

	return nil
}

func (s *recordStore) GetRange(ctx context.Context, start, end string) ([]store.DailyRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectRecordsQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	records, err := scanRecordRows(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	txRows, err := s.db.QueryContext(ctx, selectTransactionsQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	txs, err := scanTransactionRows(txRows)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(records))
	for i, r := range records {
		index[r.Date] = i
	}
	for _, t := range txs {
		if i, ok := index[t.Date]; ok {
			records[i].Transactions = append(records[i].Transactions, t)
		}
	}
	return records, nil
}

func (s *recordStore) Get(ctx context.Context, date string) (*store.DailyRecord, error) {
	records, err := s.GetRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	return &records[0], nil
}

func (s *recordStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func scanRecordRows(rows *sql.Rows) ([]store.DailyRecord, error) {
	defer rows.Close()

	records := make([]store.DailyRecord, 0)
	for rows.Next() {
		var r store.DailyRecord
		if err := rows.Scan(
			&r.Date,
			&r.ExpectedAmount,
			&r.ReceivedAmount,
			&r.Difference,
			&r.Status,
			&r.MastercardAmount,
			&r.VisaAmount,
			&r.PIXAmount,
			&r.BoletoAmount,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Transactions = []store.Transaction{}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

func scanTransactionRows(rows *sql.Rows) ([]store.Transaction, error) {
	defer rows.Close()

	txs := make([]store.Transaction, 0)
	for rows.Next() {
		var t store.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Seq, &t.Method, &t.Amount, &t.Status); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}
