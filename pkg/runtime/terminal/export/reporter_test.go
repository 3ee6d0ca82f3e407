package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "1234.50", Money(1234.5))
	assert.Equal(t, "-200.00", Money(-200))
	assert.Equal(t, "0.01", Money(0.005000001))
	assert.Equal(t, "0.00", Money(0))
}

func TestReporter_Transactions(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Transactions([]domain.DatedTransaction{{
		Date:        "2024-01-10",
		Transaction: domain.Transaction{ID: "TRANS000001", Method: domain.MethodPIX, Amount: 99.9, Status: domain.StatusReconciled},
	}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "| 2024-01-10   | TRANS000001  | PIX        |            99.90 | reconciled   |")
	assert.Contains(t, buf.String(), "1 transactions")
}

func TestReporter_History(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	rec := domain.NewDailyRecord("2024-01-10", 1000, 1000.005, domain.MethodBreakdown{domain.MethodVisa: 1000.005}, nil)
	periods := []domain.PeriodRecord{{DailyRecord: rec, Days: 1}}
	err := r.History(domain.View{
		Filter: domain.Filter{
			Range:       domain.DateRange{Start: "2024-01-01", End: "2024-01-31"},
			Granularity: domain.GranularityDaily,
		},
		Periods: periods,
		Items:   periods,
		Summary: domain.Summary{TotalReceived: 1000.005, TotalExpected: 1000, TotalDays: 1, DailyAverage: 1000.005},
		Distribution: []domain.MethodAmount{
			{Method: domain.MethodVisa, Amount: 1000.005, Percentage: 100},
		},
		Page: domain.Page{Number: 1, Size: 10, TotalItems: 1, TotalPages: 1, End: 1},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Period: 2024-01-01 to 2024-01-31\n")
	assert.Contains(t, out, "Visa         1000.01 (100.0%)")
	assert.Contains(t, out, "| 10/01/2024   |")
	assert.Contains(t, out, "| reconciled   |")
	assert.Contains(t, out, "Page 1 of 1 (1 records)")
}
