// Package repl implements the interactive read-parse-print loop used
// by `pasfront repl`. Each line is lexed and parsed independently;
// there is no persistent program state to evaluate, only diagnostics
// and an AST dump to show for it.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/go-pascal/pasfront/internal/diag"
	"github.com/go-pascal/pasfront/internal/lexer"
	"github.com/go-pascal/pasfront/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with the given banner, version string, separator
// line and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type a statement or expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until the user exits or EOF is reached.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("bye\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("bye\n"))
			return
		}
		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

// evalLine lexes and parses one line as a standalone statement list
// wrapped in a throwaway program heading, since the grammar's entry
// point is a whole program rather than a bare statement.
func (r *Repl) evalLine(w io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[internal error] %v\n", rec)
		}
	}()

	source := "program repl; begin " + line + " end."
	sink := diag.NewSink()
	l := lexer.NewFromSource("<repl>", []byte(source), sink)
	p := parser.New(l, sink)
	nodes := p.Parse()

	if l.ErrorFlag() || p.ErrorFlag() {
		for _, d := range sink.Diagnostics() {
			redColor.Fprintf(w, "%s\n", d.String())
		}
		return
	}
	for _, n := range nodes {
		yellowColor.Fprintf(w, "%s\n", n.String())
	}
}
