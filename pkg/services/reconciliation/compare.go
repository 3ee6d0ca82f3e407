package reconciliation

import "github.com/de-tools/finsync/pkg/models/domain"

// Totals sums expected and received amounts over records that are already
// restricted to r.
func Totals(records []domain.DailyRecord, r domain.DateRange) domain.PeriodTotals {
	t := domain.PeriodTotals{Label: r.String(), Range: r}
	for _, rec := range records {
		t.Expected += rec.ExpectedAmount
		t.Received += rec.ReceivedAmount
	}
	t.Difference = t.Received - t.Expected
	return t
}
