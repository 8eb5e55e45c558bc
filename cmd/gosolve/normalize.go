package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/gosolve"
)

func newNormalizeCommand() *cobra.Command {
	var asJSON bool
	command := &cobra.Command{
		Use:   "normalize <latex>",
		Short: "Show the plain text a LaTeX input normalizes to and its variable",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized := gosolve.Normalize(strings.Join(args, " "))
			variable := gosolve.DetectVariable(normalized)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"normalized": normalized,
					"variable":   variable,
				})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\nvariable: %s\n", normalized, variable)
			return err
		},
	}
	command.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return command
}
