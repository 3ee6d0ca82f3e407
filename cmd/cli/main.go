package main

import (
	"fmt"
	"os"

	"github.com/de-tools/finsync/pkg/runtime/terminal"
	"github.com/de-tools/finsync/pkg/services/source"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: source.DefaultRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
