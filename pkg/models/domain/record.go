package domain

type Transaction struct {
	ID     string
	Method PaymentMethod
	Amount float64
	Status Status
}

// DailyRecord is the reconciliation outcome of a single calendar day.
type DailyRecord struct {
	Date           string // YYYY-MM-DD
	ExpectedAmount float64
	ReceivedAmount float64
	Difference     float64
	Status         Status
	PaymentMethods MethodBreakdown
	Transactions   []Transaction
}

// NewDailyRecord builds a record with its difference and status derived from the amounts.
func NewDailyRecord(date string, expected, received float64, methods MethodBreakdown, txs []Transaction) DailyRecord {
	return DailyRecord{
		Date:           date,
		ExpectedAmount: expected,
		ReceivedAmount: received,
		Difference:     received - expected,
		Status:         DeriveStatus(expected, received),
		PaymentMethods: methods,
		Transactions:   txs,
	}
}

// PeriodRecord is a daily record or a group of daily records folded into a
// month or a year. Date holds the period key.
type PeriodRecord struct {
	DailyRecord
	Days int
}

// DatedTransaction is a transaction together with the day it belongs to.
type DatedTransaction struct {
	Date string
	Transaction
}
