package cli

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/qss/internal/store"
	"github.com/roach88/qss/internal/translate"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	*RootOptions
	DBPath string
}

// StatementResult holds one executed statement's rows.
type StatementResult struct {
	SQL     string     `json:"sql"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec <file>",
		Short: "Compile a stylesheet and run it against a SQLite database",
		Long: `Compile a stylesheet and execute the generated statements.

Each generated SELECT runs in order against the database given with
--db, opened read-only. Rows are printed per statement. Any SQL
error aborts the run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExec(opts *ExecOptions, path string, cmd *cobra.Command) error {
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

	sqlText, err := translate.Translate(src)
	if err != nil {
		return outputDiagnostic(formatter, path, err, ExitCommandError)
	}
	if sqlText == "" {
		formatter.VerboseLog("Nothing to execute: empty stylesheet")
		if formatter.Format == "json" {
			return formatter.Success([]StatementResult{})
		}
		return nil
	}

	db, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeDBFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening database", err)
	}
	defer db.Close()

	var results []StatementResult
	for _, stmt := range strings.Split(sqlText, "\n") {
		formatter.VerboseLog("Executing: %s", stmt)
		result, err := execStatement(cmd, db, stmt)
		if err != nil {
			_ = formatter.Error(ErrCodeDBFailed, fmt.Sprintf("executing %q: %v", stmt, err), nil)
			return WrapExitError(ExitCommandError, "executing statement", err)
		}
		results = append(results, result)
	}

	return outputExecResults(formatter, results)
}

// execStatement runs one statement and collects its rows as strings.
func execStatement(cmd *cobra.Command, db *store.Store, stmt string) (StatementResult, error) {
	rows, err := db.Query(cmd.Context(), stmt)
	if err != nil {
		return StatementResult{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return StatementResult{}, err
	}

	result := StatementResult{SQL: stmt, Columns: cols, Rows: [][]string{}}
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return StatementResult{}, err
		}

		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return StatementResult{}, err
	}

	return result, nil
}

// outputExecResults prints per-statement rows.
func outputExecResults(formatter *OutputFormatter, results []StatementResult) error {
	if formatter.Format == "json" {
		return formatter.Success(results)
	}

	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(formatter.Writer)
		}
		fmt.Fprintf(formatter.Writer, "-- %s\n", result.SQL)
		fmt.Fprintln(formatter.Writer, strings.Join(result.Columns, "\t"))
		for _, row := range result.Rows {
			fmt.Fprintln(formatter.Writer, strings.Join(row, "\t"))
		}
	}
	return nil
}
