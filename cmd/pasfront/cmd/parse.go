package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/go-pascal/pasfront/internal/diag"
	"github.com/go-pascal/pasfront/internal/errors"
	"github.com/go-pascal/pasfront/internal/lexer"
	"github.com/go-pascal/pasfront/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEvalExpr string
	parseDumpAST  bool
	parsePretty   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Pascal source and display the AST",
	Long: `Parse Pascal source into its AST and print it.

Use --dump-ast for a field-by-field structural dump (via
github.com/alecthomas/repr); without it, each top-level node's
String() form is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "render diagnostics with a source-line caret")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	sink := diag.NewSink()
	l := lexer.NewFromSource(filename, []byte(input), sink)
	p := parser.New(l, sink)
	nodes := p.Parse()

	if parsePretty {
		fmt.Print(errors.FormatAll(sink.Diagnostics(), input, color.NoColor == false))
	} else {
		for _, d := range sink.Diagnostics() {
			fmt.Println(d.String())
		}
	}

	if parseDumpAST {
		for _, n := range nodes {
			repr.Println(n)
		}
	} else {
		for _, n := range nodes {
			fmt.Println(n.String())
		}
	}

	if len(p.Constants()) > 0 {
		fmt.Println("--- constants ---")
		for name, c := range p.Constants() {
			fmt.Printf("%s = %s\n", name, c.String())
		}
	}

	if l.ErrorFlag() || p.ErrorFlag() {
		return fmt.Errorf("parsing reported errors")
	}
	return nil
}
