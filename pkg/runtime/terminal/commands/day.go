package commands

import (
	"github.com/spf13/cobra"
)

type DayCmd struct {
	env      *Env
	reporter Reporter
}

func NewDayCmd(env *Env, reporter Reporter) *cobra.Command {
	dc := &DayCmd{env: env, reporter: reporter}
	return &cobra.Command{
		Use:   "day DATE",
		Short: "Show the transactions and method breakdown of one day",
		Args:  cobra.ExactArgs(1),
		RunE:  dc.run,
	}
}

func (dc *DayCmd) run(cmd *cobra.Command, args []string) error {
	ctx, session, err := dc.env.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	detail, err := session.Controller.DayDetail(ctx, args[0])
	if err != nil {
		return err
	}
	return dc.reporter.Day(detail)
}
