package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/compiscript/compiscript/pkg/cli"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <archivo.cps>",
	Short: "Print the symbol table of a source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := cli.AnalyzeFile(args[0])
		if err != nil {
			exitWithError("%v", err)
		}
		cli.PrintSymbolTable(res, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
