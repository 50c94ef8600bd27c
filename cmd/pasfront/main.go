// Command pasfront is the CLI front end: lex, parse, and repl
// subcommands over the ISO 7185 Pascal scanner and parser.
package main

import (
	"os"

	"github.com/go-pascal/pasfront/cmd/pasfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
