package commands

import (
	"strings"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	env           *Env
	reporter      Reporter
	reportType    string
	format        string
	includeCharts bool
	date          string
}

func NewExportCmd(env *Env, reporter Reporter) *cobra.Command {
	ec := &ExportCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Request a report export",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.reportType, "type", "summary", "Report type: summary, detailed or comparative")
	cmd.Flags().StringVar(&ec.format, "format", "pdf", "Output format: pdf, xlsx or csv")
	cmd.Flags().BoolVar(&ec.includeCharts, "charts", true, "Include charts in the report")
	cmd.Flags().StringVar(&ec.date, "date", "", "Export the details of a single day instead")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, session, err := ec.env.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	var receipt domain.ExportReceipt
	if ec.date != "" {
		receipt, err = session.Controller.ExportDay(ctx, ec.date)
	} else {
		receipt, err = session.Controller.Export(ctx, domain.ExportRequest{
			Kind:          domain.ReportKind(strings.ToLower(ec.reportType)),
			Format:        domain.ReportFormat(strings.ToLower(ec.format)),
			IncludeCharts: ec.includeCharts,
		})
	}
	if err != nil {
		return err
	}
	return ec.reporter.Receipt(receipt)
}
