package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/go-pascal/pasfront/internal/diag"
	"github.com/go-pascal/pasfront/internal/errors"
	"github.com/go-pascal/pasfront/internal/lexer"
	"github.com/go-pascal/pasfront/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr  string
	lexShowPos   bool
	lexShowCat   bool
	lexOnlyError bool
	lexPretty    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Pascal file or expression",
	Long: `Tokenize (lex) a Pascal source and print the resulting tokens.

Examples:
  # Tokenize a source file
  pasfront lex program.pas

  # Tokenize inline source
  pasfront lex -e "x := x + 1"

  # Show category names and positions
  pasfront lex --show-cat --show-pos program.pas

  # Show only illegal tokens
  pasfront lex --only-errors program.pas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowCat, "show-cat", false, "show token category names")
	lexCmd.Flags().BoolVar(&lexOnlyError, "only-errors", false, "show only illegal tokens")
	lexCmd.Flags().BoolVar(&lexPretty, "pretty", false, "render diagnostics with a source-line caret")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	sink := diag.NewSink()
	l := lexer.NewFromSource(filename, []byte(input), sink)

	tokenCount := 0
	for {
		tok := l.NextToken()
		isError := tok.Category == token.UNKNOWN

		if !lexOnlyError || isError {
			printToken(tok, isError)
			tokenCount++
		}
		if tok.Category == token.ENDOFFILE {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
	}

	if lexPretty {
		fmt.Print(errors.FormatAll(sink.Diagnostics(), input, color.NoColor == false))
	} else {
		for _, d := range sink.Diagnostics() {
			fmt.Println(d.String())
		}
	}
	if l.ErrorFlag() {
		return fmt.Errorf("lexing reported %d error(s)", len(sink.Diagnostics()))
	}
	return nil
}

func printToken(tok token.Token, isError bool) {
	var output string
	if lexShowCat {
		output = fmt.Sprintf("[%-12s]", tok.Category)
	}
	switch {
	case tok.Category == token.ENDOFFILE:
		output += " EOF"
	case isError:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Lexeme)
	default:
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos.String())
	}
	fmt.Println(output)
}
