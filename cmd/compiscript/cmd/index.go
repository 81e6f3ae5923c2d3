package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compiscript/compiscript/internal/index"
	"github.com/compiscript/compiscript/pkg/cli"
)

var indexDBPath string

var indexCmd = &cobra.Command{
	Use:   "index <archivo.cps>",
	Short: "Analyze a source file and persist symbols and diagnostics",
	Long: `index runs the analyzer and stores the resulting scope tree and
diagnostics in a SQLite database, so editors and tools can query past
runs without re-analyzing the source.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := cli.AnalyzeFile(args[0])
		if err != nil {
			exitWithError("%v", err)
		}

		store, err := index.Open(indexDBPath)
		if err != nil {
			exitWithError("%v", err)
		}
		defer store.Close()

		root := res.Ctx.Scopes.Root()
		runID, err := store.SaveRun(args[0], root, res.Ctx.Errors)
		if err != nil {
			exitWithError("%v", err)
		}
		fmt.Printf("run %s: %d símbolos de primer nivel, %d diagnósticos\n",
			runID, root.Len(), len(res.Ctx.Errors))
	},
}

func init() {
	indexCmd.Flags().StringVar(&indexDBPath, "db", "compiscript-index.db", "index database path")
	rootCmd.AddCommand(indexCmd)
}
