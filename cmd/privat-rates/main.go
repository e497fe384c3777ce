package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// execute runs cmd and reports any failure, flag parsing included, as a
// single line on stderr.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "An error occurred: %v\n", err)
	}
	return err
}

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
