package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/qss/internal/parser"
)

// CheckResult holds check results for JSON output.
type CheckResult struct {
	Valid       bool         `json:"valid"`
	Rules       int          `json:"rules,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a stylesheet without generating SQL",
		Long: `Check that a stylesheet lexes and parses cleanly.

Runs the lexer and parser only; no SQL is generated. Faster feedback
than compile when editing, and safe to wire into editors or CI.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	src, err := ReadSource(path, cmd.InOrStdin())
	if err != nil {
		return outputLoadError(formatter, err)
	}

	doc, err := parser.Parse(src)
	if err != nil {
		// Syntax errors are check failures (exit code 1), unlike
		// compile where a broken source fails the command itself.
		d := diagnose(err)
		if formatter.Format == "json" {
			response := CLIResponse{
				Status: "error",
				Data:   CheckResult{Valid: false, Diagnostics: []Diagnostic{d}},
				Error:  &CLIError{Code: d.Code, Message: d.Message},
			}
			_ = json.NewEncoder(formatter.Writer).Encode(response)
		} else {
			fmt.Fprintln(formatter.Writer, "✗ Check failed")
			fmt.Fprintln(formatter.Writer)
			fmt.Fprintln(formatter.Writer, d.render(path))
		}
		return WrapExitError(ExitFailure, fmt.Sprintf("%s: %s", d.Code, d.Message), err)
	}

	if formatter.Format == "json" {
		return formatter.Success(CheckResult{Valid: true, Rules: len(doc.Rules)})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s: %d rule(s)\n", displayPath(path), len(doc.Rules))
	return nil
}
