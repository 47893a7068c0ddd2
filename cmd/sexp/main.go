package main

import (
	"os"

	"github.com/lispkit/sexp/cmd/sexp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
