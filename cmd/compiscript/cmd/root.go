package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/compiscript/compiscript/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "compiscript",
	Short: "Compiscript semantic analyzer",
	Long: `compiscript analyzes Compiscript source files: it builds the scope
tree, resolves and types every name, and reports semantic diagnostics.

The analyzer checks types, control flow and class member rules without
executing or generating code.`,
	Version: config.Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
