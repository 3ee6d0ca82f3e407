// Package reconciliation holds the pure pipeline behind the historical
// dashboard: filtering, period aggregation, KPIs, series and pagination.
package reconciliation

import "github.com/de-tools/finsync/pkg/models/domain"

// Filter returns the records inside the filter's date range, in input order.
// When a payment method is selected only records with a positive amount for
// that method are kept.
func Filter(records []domain.DailyRecord, f domain.Filter) ([]domain.DailyRecord, error) {
	if err := f.Range.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.DailyRecord, 0, len(records))
	for _, r := range records {
		if !f.Range.Contains(r.Date) {
			continue
		}
		if f.Method != "" && r.PaymentMethods[f.Method] <= 0 {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// MatchTransactions flattens the transactions of records and keeps the ones
// matching q.
func MatchTransactions(records []domain.DailyRecord, q domain.TransactionQuery) []domain.DatedTransaction {
	out := make([]domain.DatedTransaction, 0)
	for _, r := range records {
		if q.Date != "" && r.Date != q.Date {
			continue
		}
		for _, tx := range r.Transactions {
			if q.Status != "" && tx.Status != q.Status {
				continue
			}
			dt := domain.DatedTransaction{Date: r.Date, Transaction: tx}
			if q.Search != "" && !matchesSearch(dt, q.Search) {
				continue
			}
			out = append(out, dt)
		}
	}
	return out
}
