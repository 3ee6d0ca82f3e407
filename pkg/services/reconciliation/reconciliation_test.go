package reconciliation

import (
	"testing"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(date string, expected, received float64, txs ...domain.Transaction) domain.DailyRecord {
	methods := domain.MethodBreakdown{
		domain.MethodMastercard: received * 0.5,
		domain.MethodVisa:       received * 0.3,
		domain.MethodPIX:        received * 0.2,
		domain.MethodBoleto:     0,
	}
	return domain.NewDailyRecord(date, expected, received, methods, txs)
}

func tx(id string, status domain.Status) domain.Transaction {
	return domain.Transaction{ID: id, Method: domain.MethodVisa, Amount: 10, Status: status}
}

func fixtureRecords() []domain.DailyRecord {
	return []domain.DailyRecord{
		record("2024-01-30", 100, 100, tx("T1", domain.StatusReconciled)),
		record("2024-01-31", 200, 150, tx("T2", domain.StatusPending), tx("T3", domain.StatusPending)),
		record("2024-02-01", 300, 350, tx("T4", domain.StatusError)),
		record("2024-02-02", 400, 400),
		record("2025-01-01", 500, 500, tx("T5", domain.StatusReconciled)),
	}
}

func TestFilter(t *testing.T) {
	records := fixtureRecords()

	t.Run("inclusive range preserves order", func(t *testing.T) {
		got, err := Filter(records, domain.Filter{Range: domain.DateRange{Start: "2024-01-31", End: "2024-02-02"}})
		require.NoError(t, err)

		dates := make([]string, 0, len(got))
		for _, r := range got {
			dates = append(dates, r.Date)
		}
		assert.Equal(t, []string{"2024-01-31", "2024-02-01", "2024-02-02"}, dates)
	})

	t.Run("method selector keeps positive amounts only", func(t *testing.T) {
		got, err := Filter(records, domain.Filter{
			Range:  domain.DateRange{Start: "2024-01-01", End: "2025-12-31"},
			Method: domain.MethodBoleto,
		})
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = Filter(records, domain.Filter{
			Range:  domain.DateRange{Start: "2024-01-01", End: "2025-12-31"},
			Method: domain.MethodPIX,
		})
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("missing boundary fails", func(t *testing.T) {
		_, err := Filter(records, domain.Filter{Range: domain.DateRange{Start: "2024-01-01"}})
		assert.ErrorIs(t, err, domain.ErrMissingDateRange)
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		got, err := Filter(records, domain.Filter{Range: domain.DateRange{Start: "2024-12-31", End: "2024-01-01"}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDeriveStatus(t *testing.T) {
	r := domain.NewDailyRecord("2024-01-01", 1000, 1000.005, domain.MethodBreakdown{}, nil)
	assert.InDelta(t, 0.005, r.Difference, 1e-9)
	assert.Equal(t, domain.StatusReconciled, r.Status)

	assert.Equal(t, domain.StatusPending, domain.DeriveStatus(1000, 999.98))
	assert.Equal(t, domain.StatusError, domain.DeriveStatus(1000, 1000.02))

	assert.Equal(t, domain.StatusReconciled, domain.StatusForDifference(-0.009))
	assert.Equal(t, domain.StatusPending, domain.StatusForDifference(-0.02))
	assert.Equal(t, domain.StatusError, domain.StatusForDifference(0.02))
}

func TestAggregate(t *testing.T) {
	t.Run("daily passthrough", func(t *testing.T) {
		records := fixtureRecords()
		got := Aggregate(records, domain.GranularityDaily)
		require.Len(t, got, len(records))
		for i, p := range got {
			assert.Equal(t, records[i], p.DailyRecord)
			assert.Equal(t, 1, p.Days)
		}
	})

	t.Run("stale stored status is re-derived in every view", func(t *testing.T) {
		stale := domain.DailyRecord{
			Date:           "2024-05-10",
			ExpectedAmount: 1000,
			ReceivedAmount: 1000,
			Difference:     -40,
			Status:         domain.StatusError,
			PaymentMethods: domain.MethodBreakdown{domain.MethodPIX: 1000},
		}

		daily := Aggregate([]domain.DailyRecord{stale}, domain.GranularityDaily)
		require.Len(t, daily, 1)
		assert.Equal(t, domain.StatusReconciled, daily[0].Status)
		assert.InDelta(t, 0, daily[0].Difference, 1e-9)
		assert.Equal(t, 0, Summarize(daily).TotalDiscrepancies)

		monthly := Aggregate([]domain.DailyRecord{stale}, domain.GranularityMonthly)
		require.Len(t, monthly, 1)
		assert.Equal(t, domain.StatusReconciled, monthly[0].Status)
		assert.InDelta(t, 0, monthly[0].Difference, 1e-9)
		assert.Equal(t, Summarize(daily).TotalDiscrepancies, Summarize(monthly).TotalDiscrepancies)
	})

	t.Run("monthly sums three days", func(t *testing.T) {
		records := []domain.DailyRecord{
			record("2024-03-01", 100, 100),
			record("2024-03-02", 200, 200),
			record("2024-03-03", 300, 300),
		}
		got := Aggregate(records, domain.GranularityMonthly)
		require.Len(t, got, 1)
		assert.Equal(t, "2024-03", got[0].Date)
		assert.InDelta(t, 600, got[0].ReceivedAmount, 1e-9)
		assert.Equal(t, 3, got[0].Days)
		assert.Equal(t, domain.StatusReconciled, got[0].Status)
	})

	t.Run("monthly groups in first occurrence order and re-derives status", func(t *testing.T) {
		got := Aggregate(fixtureRecords(), domain.GranularityMonthly)
		require.Len(t, got, 3)

		assert.Equal(t, "2024-01", got[0].Date)
		assert.InDelta(t, 300, got[0].ExpectedAmount, 1e-9)
		assert.InDelta(t, 250, got[0].ReceivedAmount, 1e-9)
		assert.InDelta(t, -50, got[0].Difference, 1e-9)
		assert.Equal(t, domain.StatusPending, got[0].Status)
		assert.Len(t, got[0].Transactions, 3)
		assert.Equal(t, 2, got[0].Days)

		assert.Equal(t, "2024-02", got[1].Date)
		assert.Equal(t, domain.StatusError, got[1].Status)
		assert.Equal(t, "2025-01", got[2].Date)
	})

	t.Run("yearly totals match daily sums", func(t *testing.T) {
		records := fixtureRecords()
		got := Aggregate(records, domain.GranularityYearly)
		require.Len(t, got, 2)

		var daily, grouped float64
		for _, r := range records {
			daily += r.ReceivedAmount
		}
		for _, p := range got {
			grouped += p.ReceivedAmount
		}
		assert.InDelta(t, daily, grouped, 1e-9)
		assert.Equal(t, 4, got[0].Days)
		assert.InDelta(t, 0.5*1000, got[0].PaymentMethods[domain.MethodMastercard], 1e-9)
	})

	t.Run("sort by key", func(t *testing.T) {
		periods := []domain.PeriodRecord{
			{DailyRecord: domain.DailyRecord{Date: "2024-03"}},
			{DailyRecord: domain.DailyRecord{Date: "2023-12"}},
			{DailyRecord: domain.DailyRecord{Date: "2024-01"}},
		}
		SortByKey(periods)
		assert.Equal(t, "2023-12", periods[0].Date)
		assert.Equal(t, "2024-01", periods[1].Date)
		assert.Equal(t, "2024-03", periods[2].Date)
	})
}

func TestSummarize(t *testing.T) {
	periods := Aggregate(fixtureRecords(), domain.GranularityMonthly)
	s := Summarize(periods)

	assert.InDelta(t, 1500, s.TotalExpected, 1e-9)
	assert.InDelta(t, 1500, s.TotalReceived, 1e-9)
	assert.Equal(t, 5, s.TotalTransactions)
	assert.Equal(t, 5, s.TotalDays)
	assert.InDelta(t, 300, s.DailyAverage, 1e-9)
	assert.Equal(t, 1, s.TotalDiscrepancies)

	empty := Summarize(nil)
	assert.Zero(t, empty.DailyAverage)
}

func TestStatusPercentages(t *testing.T) {
	periods := Aggregate(fixtureRecords(), domain.GranularityDaily)
	shares := StatusPercentages(periods)
	require.Len(t, shares, 5)

	assert.Equal(t, domain.StatusShare{Key: "2024-01-30", Reconciled: 100}, shares[0])
	assert.Equal(t, domain.StatusShare{Key: "2024-01-31", Pending: 100}, shares[1])
	assert.Equal(t, domain.StatusShare{Key: "2024-02-02"}, shares[3])

	monthly := StatusPercentages(Aggregate(fixtureRecords(), domain.GranularityMonthly))
	assert.InDelta(t, 100.0/3, monthly[0].Reconciled, 1e-9)
	assert.InDelta(t, 200.0/3, monthly[0].Pending, 1e-9)
}

func TestTimeSeries(t *testing.T) {
	periods := Aggregate(fixtureRecords(), domain.GranularityMonthly)
	SortByKey(periods)
	series := TimeSeries(periods, domain.GranularityMonthly)
	require.Len(t, series, 3)
	assert.Equal(t, "01/2024", series[0].Label)
	assert.InDelta(t, 250, series[0].Received, 1e-9)

	daily := TimeSeries(Aggregate(fixtureRecords()[:1], domain.GranularityDaily), domain.GranularityDaily)
	assert.Equal(t, "30/01/2024", daily[0].Label)
}

func TestMethodDistribution(t *testing.T) {
	dist := MethodDistribution(Aggregate(fixtureRecords(), domain.GranularityDaily))
	require.Len(t, dist, 4)
	assert.Equal(t, domain.MethodMastercard, dist[0].Method)
	assert.InDelta(t, 750, dist[0].Amount, 1e-9)
	assert.InDelta(t, 50, dist[0].Percentage, 1e-9)
	assert.InDelta(t, 20, dist[2].Percentage, 1e-9)
	assert.Zero(t, dist[3].Percentage)

	zero := Breakdown(domain.MethodBreakdown{})
	for _, m := range zero {
		assert.Zero(t, m.Percentage)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		page int
		want domain.Page
	}{
		{"empty", 0, 1, domain.Page{Number: 1, Size: 10, TotalItems: 0, TotalPages: 0, Start: 0, End: 0}},
		{"first page", 25, 1, domain.Page{Number: 1, Size: 10, TotalItems: 25, TotalPages: 3, Start: 0, End: 10}},
		{"last page", 25, 3, domain.Page{Number: 3, Size: 10, TotalItems: 25, TotalPages: 3, Start: 20, End: 25}},
		{"clamped high", 25, 9, domain.Page{Number: 3, Size: 10, TotalItems: 25, TotalPages: 3, Start: 20, End: 25}},
		{"clamped low", 25, 0, domain.Page{Number: 1, Size: 10, TotalItems: 25, TotalPages: 3, Start: 0, End: 10}},
		{"exact multiple", 20, 2, domain.Page{Number: 2, Size: 10, TotalItems: 20, TotalPages: 2, Start: 10, End: 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Paginate(tc.n, tc.page))
		})
	}

	assert.False(t, Paginate(25, 1).HasPrev())
	assert.True(t, Paginate(25, 1).HasNext())
	assert.False(t, Paginate(25, 3).HasNext())
}

func TestTotals(t *testing.T) {
	a := Totals([]domain.DailyRecord{record("2024-01-01", 5000, 4800)}, domain.DateRange{Start: "2024-01-01", End: "2024-01-31"})
	b := Totals([]domain.DailyRecord{record("2024-02-01", 5000, 5100)}, domain.DateRange{Start: "2024-02-01", End: "2024-02-29"})

	assert.InDelta(t, -200, a.Difference, 1e-9)
	assert.InDelta(t, 100, b.Difference, 1e-9)
	assert.Equal(t, "2024-01-01 to 2024-01-31", a.Label)
}

func TestMatchTransactions(t *testing.T) {
	records := fixtureRecords()

	all := MatchTransactions(records, domain.TransactionQuery{})
	assert.Len(t, all, 5)

	pending := MatchTransactions(records, domain.TransactionQuery{Status: domain.StatusPending})
	require.Len(t, pending, 2)
	assert.Equal(t, "2024-01-31", pending[0].Date)

	byDay := MatchTransactions(records, domain.TransactionQuery{Date: "2024-02-01"})
	require.Len(t, byDay, 1)
	assert.Equal(t, "T4", byDay[0].ID)

	search := MatchTransactions(records, domain.TransactionQuery{Search: "t5"})
	require.Len(t, search, 1)
	assert.Equal(t, "2025-01-01", search[0].Date)
}

func TestCountStatuses(t *testing.T) {
	counts := CountStatuses([]domain.Transaction{
		tx("T1", domain.StatusReconciled),
		tx("T2", domain.StatusPending),
		tx("T3", domain.StatusPending),
		tx("T4", "lost"),
	})
	assert.Equal(t, domain.StatusCounts{Reconciled: 1, Pending: 2}, counts)
	assert.Equal(t, 3, counts.Total())

	assert.Equal(t, domain.StatusCounts{}, CountStatuses(nil))
}
