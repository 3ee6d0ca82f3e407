package commands

import (
	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/spf13/cobra"
)

type CompareCmd struct {
	env      *Env
	reporter Reporter
	first    domain.DateRange
	second   domain.DateRange
}

func NewCompareCmd(env *Env, reporter Reporter) *cobra.Command {
	cc := &CompareCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the totals of two periods",
		Long: "Compare expected, received and difference totals of two periods. " +
			"Without flags the last month is compared with the month before it.",
		RunE: cc.run,
	}

	cmd.Flags().StringVar(&cc.first.Start, "p1-from", "", "First day of period 1")
	cmd.Flags().StringVar(&cc.first.End, "p1-to", "", "Last day of period 1")
	cmd.Flags().StringVar(&cc.second.Start, "p2-from", "", "First day of period 2")
	cmd.Flags().StringVar(&cc.second.End, "p2-to", "", "Last day of period 2")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, session, err := cc.env.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	first, second := cc.first, cc.second
	if first == (domain.DateRange{}) && second == (domain.DateRange{}) {
		if first, second, err = session.Controller.DefaultComparison(); err != nil {
			return err
		}
	}

	cmp, err := session.Controller.Compare(ctx, first, second)
	if err != nil {
		return err
	}
	return cc.reporter.Comparison(cmp)
}
