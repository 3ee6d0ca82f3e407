package commands

import (
	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/spf13/cobra"
)

type TransactionsCmd struct {
	env      *Env
	reporter Reporter
	date     string
	status   string
	search   string
}

func NewTransactionsCmd(env *Env, reporter Reporter) *cobra.Command {
	tc := &TransactionsCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Search transactions",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.date, "date", "", "Only transactions of this day")
	cmd.Flags().StringVar(&tc.status, "status", "", "Only transactions in this status: reconciled, pending or error")
	cmd.Flags().StringVar(&tc.search, "search", "", "Case-insensitive text matched against id, method, status, amount and date")

	return cmd
}

func (tc *TransactionsCmd) run(cmd *cobra.Command, _ []string) error {
	q := domain.TransactionQuery{Date: tc.date, Search: tc.search}
	if tc.status != "" {
		status, err := domain.ParseStatus(tc.status)
		if err != nil {
			return err
		}
		q.Status = status
	}

	ctx, session, err := tc.env.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	txs, err := session.Controller.SearchTransactions(ctx, q)
	if err != nil {
		return err
	}
	return tc.reporter.Transactions(txs)
}
