package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/qss/internal/lexer"
	"github.com/roach88/qss/internal/token"
)

// TokenInfo is one token of the debug dump, for JSON output.
type TokenInfo struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream for a stylesheet",
		Long: `Dump the lexer's token stream, one token per line.

A debugging aid for grammar questions: shows each token's kind,
literal, and position exactly as the parser will see them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTokens(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	toks, err := lexer.New(src).Tokens()
	if err != nil {
		// Dump what lexed cleanly before the failure, then the error.
		if formatter.Format != "json" {
			printTokens(formatter, toks)
		}
		return outputDiagnostic(formatter, path, err, ExitFailure)
	}

	if formatter.Format == "json" {
		infos := make([]TokenInfo, len(toks))
		for i, tok := range toks {
			infos[i] = TokenInfo{
				Kind:    string(tok.Kind),
				Literal: tok.Literal,
				Line:    tok.Pos.Line,
				Column:  tok.Pos.Column,
				Offset:  tok.Pos.Offset,
			}
		}
		return formatter.Success(infos)
	}

	printTokens(formatter, toks)
	return nil
}

// printTokens renders tokens one per line in text format.
func printTokens(formatter *OutputFormatter, toks []token.Token) {
	for _, tok := range toks {
		fmt.Fprintln(formatter.Writer, tok.String())
	}
}
