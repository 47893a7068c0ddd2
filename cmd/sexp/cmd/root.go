package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispkit/sexp/internal/config"
	"github.com/lispkit/sexp/lexer"
)

var (
	cfgFile string
	noColor bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sexp",
	Short: "Reader front end for a small Lisp-like language",
	Long: `sexp scans Lisp source text into a token sequence and parses it into a
symbolic-expression tree. It reads and prints; it does not evaluate.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		} else {
			cfg = config.LoadDefault()
		}
		if noColor {
			cfg.Color = false
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ~/.sexprc.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func colorize(code, s string) string {
	if cfg == nil || !cfg.Color {
		return s
	}
	return code + s + "\x1b[0m"
}

func red(s string) string   { return colorize("\x1b[31m", s) }
func green(s string) string { return colorize("\x1b[32m", s) }
func blue(s string) string  { return colorize("\x1b[94m", s) }

func printTokens(tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Println(green(tok.String()))
	}
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, red(err.Error()))
}
