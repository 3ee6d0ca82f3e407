package domain

import (
	"fmt"
	"strings"
	"time"
)

type ReportKind string

const (
	ReportSummary     ReportKind = "summary"
	ReportDetailed    ReportKind = "detailed"
	ReportComparative ReportKind = "comparative"
)

type ReportFormat string

const (
	FormatPDF  ReportFormat = "pdf"
	FormatXLSX ReportFormat = "xlsx"
	FormatCSV  ReportFormat = "csv"
)

type ExportRequest struct {
	Kind          ReportKind
	Format        ReportFormat
	IncludeCharts bool
}

func (r ExportRequest) Validate() error {
	switch r.Kind {
	case ReportSummary, ReportDetailed, ReportComparative:
	default:
		return fmt.Errorf("%w: unknown report type %q", ErrInvalidExport, r.Kind)
	}
	switch r.Format {
	case FormatPDF, FormatXLSX, FormatCSV:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidExport, r.Format)
	}
	return nil
}

// Message is the acknowledgment shown to the user for the request.
func (r ExportRequest) Message() string {
	format := strings.ToUpper(string(r.Format))
	var msg string
	switch r.Kind {
	case ReportDetailed:
		msg = fmt.Sprintf("Exporting detailed daily report in %s format", format)
	case ReportComparative:
		msg = fmt.Sprintf("Exporting comparative report in %s format", format)
	default:
		msg = fmt.Sprintf("Exporting period summary report in %s format", format)
	}
	if r.IncludeCharts {
		return msg + " (including charts)"
	}
	return msg + " (without charts)"
}

// ExportReceipt acknowledges an export request. No artifact is produced.
type ExportReceipt struct {
	ID            string
	Kind          ReportKind
	Format        ReportFormat
	IncludeCharts bool
	Date          string
	Message       string
	RequestedAt   time.Time
}
