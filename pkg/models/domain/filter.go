package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of ISO calendar days.
type DateRange struct {
	Start string
	End   string
}

func (r DateRange) Validate() error {
	if r.Start == "" || r.End == "" {
		return ErrMissingDateRange
	}
	for _, d := range []string{r.Start, r.End} {
		if err := ValidateDate(d); err != nil {
			return err
		}
	}
	return nil
}

// Contains relies on ISO dates sorting lexicographically.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}

func ValidateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// Filter selects the records shown on the dashboard. An empty Method selects
// every payment method.
type Filter struct {
	Range       DateRange
	Method      PaymentMethod
	Granularity Granularity
}

func (f Filter) Validate() error {
	if err := f.Range.Validate(); err != nil {
		return err
	}
	if f.Method != "" {
		if _, err := ParsePaymentMethod(string(f.Method)); err != nil {
			return err
		}
	}
	if _, err := ParseGranularity(string(f.Granularity)); err != nil {
		return err
	}
	return nil
}

// TransactionQuery narrows a transaction search. Zero fields match everything.
type TransactionQuery struct {
	Date   string
	Status Status
	Search string
}
