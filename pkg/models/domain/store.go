package domain

import (
	"context"
	"sort"
)

// RecordStore is an immutable, date-ordered set of daily records.
type RecordStore struct {
	records []DailyRecord
	index   map[string]int
}

// NewRecordStore copies the records, sorts them by date and indexes them.
// A later record replaces an earlier one with the same date.
func NewRecordStore(records []DailyRecord) *RecordStore {
	byDate := make(map[string]DailyRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	sorted := make([]DailyRecord, 0, len(byDate))
	for _, r := range byDate {
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	index := make(map[string]int, len(sorted))
	for i, r := range sorted {
		index[r.Date] = i
	}
	return &RecordStore{records: sorted, index: index}
}

func (s *RecordStore) Len() int {
	return len(s.records)
}

func (s *RecordStore) Records() []DailyRecord {
	return s.records
}

func (s *RecordStore) Get(date string) (DailyRecord, bool) {
	i, ok := s.index[date]
	if !ok {
		return DailyRecord{}, false
	}
	return s.records[i], true
}

// Range returns the records within r, in date order.
func (s *RecordStore) Range(ctx context.Context, r DateRange) ([]DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	lo := sort.Search(len(s.records), func(i int) bool { return s.records[i].Date >= r.Start })
	hi := sort.Search(len(s.records), func(i int) bool { return s.records[i].Date > r.End })
	if lo >= hi {
		return []DailyRecord{}, nil
	}
	return s.records[lo:hi], nil
}

// Bounds returns the first and last stored dates.
func (s *RecordStore) Bounds() (DateRange, bool) {
	if len(s.records) == 0 {
		return DateRange{}, false
	}
	return DateRange{Start: s.records[0].Date, End: s.records[len(s.records)-1].Date}, true
}
