package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/njchilds90/gosolve"
)

func newExamplesCommand() *cobra.Command {
	var run bool
	command := &cobra.Command{
		Use:   "examples",
		Short: "List built-in example inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			for _, ex := range gosolve.Examples {
				if !run {
					_, _ = bold.Fprintf(w, "%-20s", ex.Name)
					_, _ = color.New(color.Faint).Fprintf(w, " [%s] ", ex.Mode)
					_, _ = w.Write([]byte(ex.LaTeX + "\n"))
					continue
				}
				printResult(w, gosolve.SolveEquation(ex.LaTeX, ex.Mode))
			}
			return nil
		},
	}
	command.Flags().BoolVar(&run, "run", false, "solve every example and print the results")
	return command
}
