package reconciliation

import (
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/finsync/pkg/models/domain"
)

// Summarize computes the dashboard KPIs. A period without a day count counts
// as one day.
func Summarize(periods []domain.PeriodRecord) domain.Summary {
	var s domain.Summary
	for _, p := range periods {
		s.TotalExpected += p.ExpectedAmount
		s.TotalReceived += p.ReceivedAmount
		s.TotalTransactions += len(p.Transactions)
		if p.Days > 0 {
			s.TotalDays += p.Days
		} else {
			s.TotalDays++
		}
		if p.Status == domain.StatusError {
			s.TotalDiscrepancies++
		}
	}
	if s.TotalDays > 0 {
		s.DailyAverage = s.TotalReceived / float64(s.TotalDays)
	}
	return s
}

// TimeSeries returns one point per period. Periods must already be sorted.
func TimeSeries(periods []domain.PeriodRecord, g domain.Granularity) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(periods))
	for _, p := range periods {
		out = append(out, domain.SeriesPoint{
			Key:      p.Date,
			Label:    g.Label(p.Date),
			Received: p.ReceivedAmount,
			Expected: p.ExpectedAmount,
			Methods:  p.PaymentMethods.Clone(),
		})
	}
	return out
}

// StatusPercentages reports, per period, the share of its transactions in
// each status. Periods without transactions report zero everywhere.
func StatusPercentages(periods []domain.PeriodRecord) []domain.StatusShare {
	out := make([]domain.StatusShare, 0, len(periods))
	for _, p := range periods {
		share := domain.StatusShare{Key: p.Date}
		counts := CountStatuses(p.Transactions)
		if total := counts.Total(); total > 0 {
			share.Reconciled = percentOf(counts.Reconciled, total)
			share.Pending = percentOf(counts.Pending, total)
			share.Error = percentOf(counts.Error, total)
		}
		out = append(out, share)
	}
	return out
}

// CountStatuses tallies transactions by status. Unknown tags are not counted.
func CountStatuses(txs []domain.Transaction) domain.StatusCounts {
	var c domain.StatusCounts
	for _, tx := range txs {
		switch tx.Status {
		case domain.StatusReconciled:
			c.Reconciled++
		case domain.StatusPending:
			c.Pending++
		case domain.StatusError:
			c.Error++
		}
	}
	return c
}

func percentOf(n, total int) float64 {
	return float64(n) / float64(total) * 100
}

// MethodDistribution totals every payment method across the periods.
func MethodDistribution(periods []domain.PeriodRecord) []domain.MethodAmount {
	totals := make(domain.MethodBreakdown, len(domain.PaymentMethods))
	for _, p := range periods {
		for _, m := range domain.PaymentMethods {
			totals[m] += p.PaymentMethods[m]
		}
	}
	return Breakdown(totals)
}

// Breakdown orders a method breakdown and attaches each method's share of
// the total, in percent rounded to one decimal.
func Breakdown(b domain.MethodBreakdown) []domain.MethodAmount {
	total := b.Total()
	out := make([]domain.MethodAmount, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		ma := domain.MethodAmount{Method: m, Amount: b[m]}
		if total > 0 {
			ma.Percentage = math.Round(b[m]/total*1000) / 10
		}
		out = append(out, ma)
	}
	return out
}

func matchesSearch(tx domain.DatedTransaction, search string) bool {
	needle := strings.ToLower(search)
	fields := []string{
		tx.ID,
		string(tx.Method),
		string(tx.Status),
		tx.Date,
		strconv.FormatFloat(tx.Amount, 'f', 2, 64),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
