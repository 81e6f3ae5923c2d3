package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/compiscript/compiscript/pkg/cli"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <archivo.cps>",
	Short: "Analyze a source file and report diagnostics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := cli.AnalyzeFile(args[0])
		if err != nil {
			exitWithError("%v", err)
		}
		if checkStrict {
			res.Cfg.StrictProps = true
			res = cli.AnalyzeSource(res.Ctx.SourceCode, args[0], res.Cfg)
		}
		os.Exit(cli.Report(res, os.Stdout, true))
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict-props", false,
		"report E_PROP_UNDEF for unknown property accesses")
	rootCmd.AddCommand(checkCmd)
}
