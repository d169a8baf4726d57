package main

import (
	"fmt"
	"os"

	"github.com/fis-tools/fiscal-atlas/pkg/runtime/terminal"
	"github.com/fis-tools/fiscal-atlas/pkg/services/report"
	"github.com/fis-tools/fiscal-atlas/pkg/store/static"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Assembler: report.NewAssembler(static.NewStore()),
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
