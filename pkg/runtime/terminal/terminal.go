package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fin-tools/finhealth/pkg/runtime/terminal/commands"
	"github.com/fin-tools/finhealth/pkg/runtime/terminal/export"
)

// CLI is the one-shot command-line interface to the analysis backend.
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI.
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance.
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finhealth",
		Short: "Financial health analysis client",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.reporter))
	cmd.AddCommand(commands.NewChatCmd())
	cmd.AddCommand(commands.NewReportCmd())

	return cmd
}
