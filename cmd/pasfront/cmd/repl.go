package cmd

import (
	"os"

	"github.com/go-pascal/pasfront/internal/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lex/parse session",
	Run: func(cmd *cobra.Command, args []string) {
		r := repl.New(
			"pasfront",
			Version,
			"----------------------------------------",
			"pas> ",
		)
		r.Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
