package commands

import (
	"fmt"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/spf13/cobra"
)

type HistoryCmd struct {
	env      *Env
	reporter Reporter
	from     string
	to       string
	method   string
	view     string
	preset   string
	page     int
}

func NewHistoryCmd(env *Env, reporter Reporter) *cobra.Command {
	hc := &HistoryCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the reconciliation history for a date range",
		RunE:  hc.run,
	}

	cmd.Flags().StringVar(&hc.from, "from", "", "First day, YYYY-MM-DD (default: one month before the last day)")
	cmd.Flags().StringVar(&hc.to, "to", "", "Last day, YYYY-MM-DD (default: the last loaded day)")
	cmd.Flags().StringVar(&hc.method, "method", "all", "Payment method: all, mastercard, visa, pix or boleto")
	cmd.Flags().StringVar(&hc.view, "view", "daily", "Granularity: daily, monthly or yearly")
	cmd.Flags().StringVar(&hc.preset, "preset", "", "Use a named preset instead of the filter flags")
	cmd.Flags().IntVar(&hc.page, "page", 1, "Page of the table to show")

	return cmd
}

func (hc *HistoryCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, session, err := hc.env.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	filter, err := hc.filter(cmd, session)
	if err != nil {
		return err
	}

	view, err := session.Controller.Apply(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to apply filter: %w", err)
	}
	if hc.page != 1 {
		if view, err = session.Controller.GoToPage(hc.page); err != nil {
			return err
		}
	}

	return hc.reporter.History(view)
}

func (hc *HistoryCmd) filter(cmd *cobra.Command, session *Session) (domain.Filter, error) {
	if hc.preset != "" {
		preset, err := session.Presets.GetPreset(cmd.Context(), hc.preset)
		if err != nil {
			return domain.Filter{}, err
		}
		return *preset, nil
	}

	method, err := domain.ParseMethodSelector(hc.method)
	if err != nil {
		return domain.Filter{}, err
	}
	view, err := domain.ParseGranularity(hc.view)
	if err != nil {
		return domain.Filter{}, err
	}

	filter := domain.Filter{
		Range:       domain.DateRange{Start: hc.from, End: hc.to},
		Method:      method,
		Granularity: view,
	}
	if hc.from == "" && hc.to == "" {
		def, err := session.Controller.DefaultFilter()
		if err != nil {
			return domain.Filter{}, err
		}
		filter.Range = def.Range
	}
	return filter, nil
}
