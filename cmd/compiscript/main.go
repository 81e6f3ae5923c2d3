package main

import (
	"os"

	"github.com/compiscript/compiscript/cmd/compiscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
