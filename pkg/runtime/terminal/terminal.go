package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/fis-tools/fiscal-atlas/pkg/handlers/dashboard"
	"github.com/fis-tools/fiscal-atlas/pkg/runtime/terminal/commands"
	"github.com/fis-tools/fiscal-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	assembler dashboard.Assembler
	reporter  *export.Reporter
	output    io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Assembler dashboard.Assembler
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		assembler: opts.Assembler,
		reporter:  export.NewReporter(opts.Output),
		output:    opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiscal",
		Short: "Government financial statements reporting tool",
	}

	cmd.AddCommand(commands.NewViewCmd(cli.assembler, cli.reporter))
	cmd.AddCommand(commands.NewViewsCmd(func(format string, a ...any) {
		fmt.Fprintf(cli.output, format, a...)
	}))

	return cmd
}
