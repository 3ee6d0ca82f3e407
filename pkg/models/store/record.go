package store

import "time"

type DailyRecord struct {
	Date             string
	ExpectedAmount   float64
	ReceivedAmount   float64
	Difference       float64
	Status           string
	MastercardAmount float64
	VisaAmount       float64
	PIXAmount        float64
	BoletoAmount     float64
	Transactions     []Transaction
}

type Transaction struct {
	ID     string
	Date   string
	Seq    int
	Method string
	Amount float64
	Status string
}

type LoadRun struct {
	Source       string
	RecordsCount int64
	FirstDate    string
	LastDate     string
	LoadedAt     time.Time
}
