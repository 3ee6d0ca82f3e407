package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	DateWidth   int
	AmountWidth int
	StatusWidth int
	CountWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:   12,
		AmountWidth: 16,
		StatusWidth: 12,
		CountWidth:  8,
	}
}

// Reporter prints dashboard views and transaction lists as fixed-width tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Money renders an amount with two decimals.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func (c *Reporter) funcs() template.FuncMap {
	cfg := c.config
	return template.FuncMap{
		"money": Money,
		"label": func(g domain.Granularity, key string) string { return g.Label(key) },
		"recordRow": func(label string, expected, received, difference float64, status domain.Status, txs int) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %-*s | %*d |",
				cfg.DateWidth, label,
				cfg.AmountWidth, Money(expected),
				cfg.AmountWidth, Money(received),
				cfg.AmountWidth, Money(difference),
				cfg.StatusWidth, status,
				cfg.CountWidth, txs)
		},
		"recordHeader": func() string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %-*s | %*s |",
				cfg.DateWidth, "Period",
				cfg.AmountWidth, "Expected",
				cfg.AmountWidth, "Received",
				cfg.AmountWidth, "Difference",
				cfg.StatusWidth, "Status",
				cfg.CountWidth, "Txs")
		},
		"recordSeparator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.DateWidth+2),
				strings.Repeat("-", cfg.AmountWidth+2),
				strings.Repeat("-", cfg.AmountWidth+2),
				strings.Repeat("-", cfg.AmountWidth+2),
				strings.Repeat("-", cfg.StatusWidth+2),
				strings.Repeat("-", cfg.CountWidth+2))
		},
		"txRow": func(date, id string, method domain.PaymentMethod, amount float64, status domain.Status) string {
			return fmt.Sprintf("| %-*s | %-12s | %-10s | %*s | %-*s |",
				cfg.DateWidth, date, id, method.Label(),
				cfg.AmountWidth, Money(amount),
				cfg.StatusWidth, status)
		},
		"txHeader": func() string {
			return fmt.Sprintf("| %-*s | %-12s | %-10s | %*s | %-*s |",
				cfg.DateWidth, "Date", "ID", "Method",
				cfg.AmountWidth, "Amount",
				cfg.StatusWidth, "Status")
		},
		"txSeparator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.DateWidth+2),
				strings.Repeat("-", 14),
				strings.Repeat("-", 12),
				strings.Repeat("-", cfg.AmountWidth+2),
				strings.Repeat("-", cfg.StatusWidth+2))
		},
	}
}

func (c *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(c.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

func (c *Reporter) History(view domain.View) error {
	tmpl := `
Reconciliation history ({{.Filter.Granularity}})
Period: {{.Filter.Range.Start}} to {{.Filter.Range.End}}{{if .Filter.Method}}  Method: {{.Filter.Method.Label}}{{end}}

Total received:     {{money .Summary.TotalReceived}}
Total expected:     {{money .Summary.TotalExpected}}
Transactions:       {{.Summary.TotalTransactions}}
Daily average:      {{money .Summary.DailyAverage}}
Discrepancies:      {{.Summary.TotalDiscrepancies}}

=== Distribution ===
{{range .Distribution}}{{printf "%-12s" .Method.Label}} {{money .Amount}} ({{printf "%.1f" .Percentage}}%)
{{end}}
{{recordSeparator}}
{{recordHeader}}
{{recordSeparator}}
{{range .Items}}{{recordRow (label $.Filter.Granularity .Date) .ExpectedAmount .ReceivedAmount .Difference .Status (len .Transactions)}}
{{end}}{{recordSeparator}}
Page {{.Page.Number}} of {{.Page.TotalPages}} ({{.Page.TotalItems}} records)
`
	return c.render("history", tmpl, view)
}

func (c *Reporter) Day(detail domain.DayDetail) error {
	tmpl := `
Day {{label "daily" .Record.Date}}
Expected: {{money .Record.ExpectedAmount}}  Received: {{money .Record.ReceivedAmount}}  Difference: {{money .Record.Difference}}
Status: {{.Record.Status}}
Transactions: {{.StatusCounts.Reconciled}} reconciled ({{printf "%.1f" .StatusShare.Reconciled}}%)  {{.StatusCounts.Pending}} pending ({{printf "%.1f" .StatusShare.Pending}}%)  {{.StatusCounts.Error}} error ({{printf "%.1f" .StatusShare.Error}}%)

=== By method ===
{{range .Breakdown}}{{printf "%-12s" .Method.Label}} {{money .Amount}} ({{printf "%.1f" .Percentage}}%)
{{end}}
{{txSeparator}}
{{txHeader}}
{{txSeparator}}
{{range .Record.Transactions}}{{txRow $.Record.Date .ID .Method .Amount .Status}}
{{end}}{{txSeparator}}
`
	return c.render("day", tmpl, detail)
}

func (c *Reporter) Transactions(txs []domain.DatedTransaction) error {
	tmpl := `
{{txSeparator}}
{{txHeader}}
{{txSeparator}}
{{range .}}{{txRow .Date .ID .Method .Amount .Status}}
{{end}}{{txSeparator}}
{{len .}} transactions
`
	return c.render("transactions", tmpl, txs)
}
