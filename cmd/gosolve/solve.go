package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/njchilds90/gosolve"
	"github.com/njchilds90/gosolve/internal/client"
)

var errSolveFailed = errors.New("solve failed")

type solveOptions struct {
	mode      string
	asJSON    bool
	remote    bool
	serverURL string
}

func newSolveCommand() *cobra.Command {
	var opts solveOptions
	command := &cobra.Command{
		Use:   "solve <latex>",
		Short: "Solve an equation or factorize an expression",
		Example: `  gosolve solve 'x^{2} + 5x + 6 = 0'
  gosolve solve --mode integrate '\sin(x)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := gosolve.ParseMode(opts.mode)
			if err != nil {
				return err
			}
			return runSolve(cmd, strings.Join(args, " "), mode, opts)
		},
	}
	addOutputFlags(command, &opts)
	command.Flags().StringVarP(&opts.mode, "mode", "m", string(gosolve.ModeSolve), "operation: solve, differentiate or integrate")
	return command
}

func newDiffCommand() *cobra.Command {
	return newTransformCommand("diff <latex>", "Differentiate with respect to the detected variable", gosolve.ModeDifferentiate, "derivative")
}

func newIntegrateCommand() *cobra.Command {
	return newTransformCommand("integrate <latex>", "Integrate with respect to the detected variable", gosolve.ModeIntegrate, "integral")
}

func newTransformCommand(use, short string, mode gosolve.Mode, aliases ...string) *cobra.Command {
	var opts solveOptions
	command := &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, strings.Join(args, " "), mode, opts)
		},
	}
	addOutputFlags(command, &opts)
	return command
}

func addOutputFlags(command *cobra.Command, opts *solveOptions) {
	command.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	command.Flags().StringVar(&opts.serverURL, "server", "", "solve on a remote tool server at this URL instead of locally")
	command.Flags().BoolVar(&opts.remote, "remote", false, "solve on the tool server at client.base_url from the config")
}

func runSolve(cmd *cobra.Command, latex string, mode gosolve.Mode, opts solveOptions) error {
	var res gosolve.Result
	if opts.serverURL == "" && !opts.remote {
		res = gosolve.SolveEquation(latex, mode)
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		baseURL := opts.serverURL
		if baseURL == "" {
			baseURL = cfg.Client.BaseURL
		}
		c := client.New(baseURL, cfg.Client.Retries, client.WithTimeout(cfg.Client.Timeout))
		defer c.Close()

		if res, err = c.Solve(cmd.Context(), latex, mode); err != nil {
			return fmt.Errorf("client.Solve() > %w", err)
		}
	}

	w := cmd.OutOrStdout()
	if opts.asJSON {
		if err := writeJSON(w, res); err != nil {
			return err
		}
	} else {
		printResult(w, res)
	}
	if res.Outcome == gosolve.OutcomeError {
		return fmt.Errorf("%w: %s", errSolveFailed, res.Error)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json.Encode() > %w", err)
	}
	return nil
}

func printResult(w io.Writer, res gosolve.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	_, _ = bold.Fprintf(w, "%s (%s)\n", res.Original, res.Mode)
	switch res.Outcome {
	case gosolve.OutcomeError:
		_, _ = red.Fprintln(w, res.Error)
	case gosolve.OutcomeSolutions:
		set := res.Solutions
		for _, line := range set.Strings() {
			if set.Verdict == gosolve.VerdictRoots && len(set.Roots) > 0 {
				line = set.Variable + " = " + line
			}
			_, _ = green.Fprintln(w, "  "+line)
		}
	default:
		_, _ = green.Fprintf(w, "  %s: %s\n", res.Outcome, res.LaTeX)
	}
}
