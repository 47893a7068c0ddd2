package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispkit/sexp/ast"
	"github.com/lispkit/sexp/lexer"
	"github.com/lispkit/sexp/parser"
)

var (
	runDumpTokens bool
	runTree       bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Read a source file and print its expression trees",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runDumpTokens, "tokens", false, "also dump the token sequence")
	runCmd.Flags().BoolVar(&runTree, "tree", false, "print indented trees instead of encoded forms")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	if runDumpTokens || cfg.DumpTokens {
		printTokens(tokens)
	}

	nodes, err := parser.New(tokens).ParseAll()
	if err != nil {
		return err
	}

	for _, node := range nodes {
		if runTree {
			fmt.Print(ast.Sprint(node))
			continue
		}
		fmt.Println(blue(string(ast.Encode(node))))
	}
	return nil
}
