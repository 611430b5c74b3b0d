package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/latex"
)

func newLatexCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "latex <expression>...",
		Short:   "Convert typed math into LaTeX",
		Example: `  mathgrade latex "2√(x+1)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), latex.ASCIIToLatex(strings.Join(args, " "))); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
			return nil
		},
	}
}
