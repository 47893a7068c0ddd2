package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/lispkit/sexp"
	"github.com/lispkit/sexp/ast"
	"github.com/lispkit/sexp/lexer"
	"github.com/lispkit/sexp/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg.HistoryFile
	}
	return filepath.Join(home, cfg.HistoryFile)
}

func runRepl(cmd *cobra.Command, args []string) error {
	fmt.Printf("sexp %s reader REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", sexp.Version)

	histPath := historyPath()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	dumpTokens := cfg.DumpTokens

	for {
		src, ok := readByScanProbe(ln, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			case ":tokens":
				dumpTokens = !dumpTokens
				fmt.Printf("token dump %v\n", onOff(dumpTokens))
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		tokens, err := lexer.Scan(src)
		if err != nil {
			reportError(err)
			continue
		}
		if dumpTokens {
			printTokens(tokens)
		}

		nodes, err := parser.New(tokens).ParseAll()
		if err != nil {
			reportError(err)
			continue
		}
		for _, node := range nodes {
			fmt.Println(blue(string(ast.Encode(node))))
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readByScanProbe reads one input, pulling further lines while the scanner
// reports an unterminated string. Unbalanced parens need no continuation:
// the parser closes them implicitly at end of input.
func readByScanProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, serr := lexer.Scan(src); errors.Is(serr, lexer.ErrUnterminatedString) {
			continue
		}
		return src, true
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
