package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/runtime/terminal/commands"
	"github.com/de-tools/finsync/pkg/runtime/terminal/export"
)

// Reporter outputs comparisons, export receipts and presets as plain text
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(template.FuncMap{"money": export.Money}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

func (c *Reporter) Comparison(cmp domain.Comparison) error {
	tmpl := `
Period comparison
{{range .}}
=== {{.Label}} ===
Expected:   {{money .Expected}}
Received:   {{money .Received}}
Difference: {{money .Difference}}
{{end}}
`
	return c.render("comparison", tmpl, []domain.PeriodTotals{cmp.First, cmp.Second})
}

func (c *Reporter) Receipt(r domain.ExportReceipt) error {
	tmpl := `{{.Message}}
Request {{.ID}} accepted at {{.RequestedAt.Format "2006-01-02 15:04:05"}}
`
	return c.render("receipt", tmpl, r)
}

func (c *Reporter) Presets(presets []commands.NamedFilter) error {
	tmpl := `{{range .}}{{.Name}}: {{.Filter.Range.Start}} to {{.Filter.Range.End}}, {{if .Filter.Method}}{{.Filter.Method.Label}}{{else}}all methods{{end}}, {{.Filter.Granularity}}
{{else}}no presets configured
{{end}}`
	return c.render("presets", tmpl, presets)
}

// consoleReporter prints tables for views and plain text for the rest.
type consoleReporter struct {
	*export.Reporter
	text *Reporter
}

func newConsoleReporter(w io.Writer) commands.Reporter {
	return &consoleReporter{
		Reporter: export.NewReporter(w),
		text:     NewReporter(w),
	}
}

func (c *consoleReporter) Comparison(cmp domain.Comparison) error {
	return c.text.Comparison(cmp)
}

func (c *consoleReporter) Receipt(r domain.ExportReceipt) error {
	return c.text.Receipt(r)
}

func (c *consoleReporter) Presets(presets []commands.NamedFilter) error {
	return c.text.Presets(presets)
}
