package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispkit/sexp/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Scan a source file and dump its token sequence",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	printTokens(tokens)
	return nil
}
