package reconciliation

import (
	"sort"

	"github.com/de-tools/finsync/pkg/models/domain"
)

// Aggregate folds records into periods of the given granularity.
//
// Daily is a passthrough where every record counts as one day. Monthly and
// yearly group by the YYYY-MM or YYYY prefix of the date, in order of first
// occurrence. Every output record gets its difference and status derived
// from the amounts, whatever the source stored.
func Aggregate(records []domain.DailyRecord, g domain.Granularity) []domain.PeriodRecord {
	if g == domain.GranularityDaily || g == "" {
		out := make([]domain.PeriodRecord, 0, len(records))
		for _, r := range records {
			r.Difference = r.ReceivedAmount - r.ExpectedAmount
			r.Status = domain.StatusForDifference(r.Difference)
			out = append(out, domain.PeriodRecord{DailyRecord: r, Days: 1})
		}
		return out
	}

	keyLen := g.KeyLen()
	index := make(map[string]int)
	out := make([]domain.PeriodRecord, 0)

	for _, r := range records {
		key := r.Date
		if len(key) > keyLen {
			key = key[:keyLen]
		}

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, domain.PeriodRecord{
				DailyRecord: domain.DailyRecord{
					Date:           key,
					PaymentMethods: make(domain.MethodBreakdown, len(domain.PaymentMethods)),
					Transactions:   []domain.Transaction{},
				},
			})
		}

		p := &out[i]
		p.ExpectedAmount += r.ExpectedAmount
		p.ReceivedAmount += r.ReceivedAmount
		p.Difference += r.ReceivedAmount - r.ExpectedAmount
		for _, m := range domain.PaymentMethods {
			p.PaymentMethods[m] += r.PaymentMethods[m]
		}
		p.Transactions = append(p.Transactions, r.Transactions...)
		p.Days++
	}

	for i := range out {
		out[i].Status = domain.StatusForDifference(out[i].Difference)
	}
	return out
}

// SortByKey orders periods by ascending key.
func SortByKey(periods []domain.PeriodRecord) {
	sort.SliceStable(periods, func(i, j int) bool { return periods[i].Date < periods[j].Date })
}
