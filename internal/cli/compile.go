package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/qss/internal/translate"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output string // output file path
}

// CompileResult holds the generated SQL for JSON output.
type CompileResult struct {
	SQL        string `json:"sql"`
	Statements int    `json:"statements"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a stylesheet to SQL",
		Long: `Compile a stylesheet to SQL projection statements.

Each rule becomes one SELECT statement, in source order. Use "-" as
the file argument to read from stdin. On any lexer or parser error
nothing is emitted and the run fails as a whole.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runCompile(opts *CompileOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	src, err := ReadSource(path, cmd.InOrStdin())
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Read %d byte(s) from %s", len(src), displayPath(path))

	sql, err := translate.Translate(src)
	if err != nil {
		// Core errors are command-level errors (exit code 2)
		return outputDiagnostic(formatter, path, err, ExitCommandError)
	}

	result := CompileResult{SQL: sql, Statements: countStatements(sql)}
	formatter.VerboseLog("Generated %d statement(s)", result.Statements)

	if opts.Output != "" {
		if err := writeSQLToFile(sql, opts.Output); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
	}

	return outputCompileSuccess(formatter, result, opts.Output)
}

// countStatements counts generated statements: one per line.
func countStatements(sql string) int {
	if sql == "" {
		return 0
	}
	return strings.Count(sql, "\n") + 1
}

// outputCompileSuccess outputs the generated SQL.
func outputCompileSuccess(formatter *OutputFormatter, result CompileResult, outputFile string) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	// Text output is the SQL blob verbatim, one statement per line.
	if result.SQL != "" {
		fmt.Fprintln(formatter.Writer, result.SQL)
	}
	if outputFile != "" {
		formatter.VerboseLog("Wrote SQL to %s", outputFile)
	}
	return nil
}

// outputLoadError outputs a source loading failure.
func outputLoadError(formatter *OutputFormatter, err error) error {
	if loadErr, ok := err.(*LoadError); ok {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(ExitCommandError, loadErr.Message, err)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, err.Error(), err)
}

// writeSQLToFile writes the generated SQL to a file, newline-terminated.
func writeSQLToFile(sql, filename string) error {
	out := sql
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if err := os.WriteFile(filename, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
