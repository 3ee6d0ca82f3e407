package api

import "time"

type Transaction struct {
	ID     string  `json:"id"`
	Date   string  `json:"date,omitempty"`
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type Record struct {
	Date           string             `json:"date"`
	ExpectedAmount float64            `json:"expected_amount"`
	ReceivedAmount float64            `json:"received_amount"`
	Difference     float64            `json:"difference"`
	Status         string             `json:"status"`
	PaymentMethods map[string]float64 `json:"payment_methods"`
	Transactions   []Transaction      `json:"transactions"`
	Days           int                `json:"days,omitempty"`
}

type Filter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Method    string `json:"payment_method"`
	View      string `json:"view"`
}

type Summary struct {
	TotalExpected      float64 `json:"total_expected"`
	TotalReceived      float64 `json:"total_received"`
	TotalTransactions  int     `json:"total_transactions"`
	TotalDays          int     `json:"total_days"`
	DailyAverage       float64 `json:"daily_average"`
	TotalDiscrepancies int     `json:"total_discrepancies"`
}

type Page struct {
	Number     int  `json:"number"`
	Size       int  `json:"size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

type MethodAmount struct {
	Method     string  `json:"method"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type Chart struct {
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type History struct {
	Filter       Filter         `json:"filter"`
	Summary      Summary        `json:"summary"`
	Distribution []MethodAmount `json:"distribution"`
	Charts       []Chart        `json:"charts"`
	Page         Page           `json:"page"`
	Items        []Record       `json:"items"`
}

type StatusCounts struct {
	Reconciled int `json:"reconciled"`
	Pending    int `json:"pending"`
	Error      int `json:"error"`
}

type StatusPercentages struct {
	Reconciled float64 `json:"reconciled"`
	Pending    float64 `json:"pending"`
	Error      float64 `json:"error"`
}

type DayDetail struct {
	Record            Record            `json:"record"`
	Breakdown         []MethodAmount    `json:"breakdown"`
	StatusCounts      StatusCounts      `json:"status_counts"`
	StatusPercentages StatusPercentages `json:"status_percentages"`
	Chart             Chart             `json:"chart"`
}

type PeriodTotals struct {
	Label      string  `json:"label"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Expected   float64 `json:"expected"`
	Received   float64 `json:"received"`
	Difference float64 `json:"difference"`
}

type Comparison struct {
	Period1 PeriodTotals `json:"period1"`
	Period2 PeriodTotals `json:"period2"`
	Chart   Chart        `json:"chart"`
}

type ExportRequest struct {
	ReportType    string `json:"report_type"`
	Format        string `json:"format"`
	IncludeCharts bool   `json:"include_charts"`
}

type ExportReceipt struct {
	ID            string    `json:"id"`
	ReportType    string    `json:"report_type"`
	Format        string    `json:"format,omitempty"`
	IncludeCharts bool      `json:"include_charts"`
	Date          string    `json:"date,omitempty"`
	Message       string    `json:"message"`
	RequestedAt   time.Time `json:"requested_at"`
}

type Preset struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Method    string `json:"payment_method"`
	View      string `json:"view"`
}
