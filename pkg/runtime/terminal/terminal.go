package terminal

import (
	"io"
	"os"

	"github.com/de-tools/finsync/pkg/runtime/terminal/commands"
	"github.com/de-tools/finsync/pkg/services/source"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env      *commands.Env
	reporter commands.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry source.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = source.DefaultRegistry()
	}

	cli := &CLI{
		env:      &commands.Env{Registry: opts.Registry, ErrOut: os.Stderr},
		reporter: newConsoleReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the process arguments, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "finsync",
		Short:         "Historical payment reconciliation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.env.ConfigPath, "config", "c", "", "Path to a YAML configuration file")

	cmd.AddCommand(commands.NewHistoryCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewDayCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewCompareCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewTransactionsCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewPresetsCmd(cli.env, cli.reporter))

	return cmd
}
