// Package cli drives the analyzer for the command-line front-end: it reads
// a source file, runs the lexer → parser → analyzer pipeline, and renders
// diagnostics and the symbol table.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/compiscript/compiscript/internal/analyzer"
	"github.com/compiscript/compiscript/internal/config"
	"github.com/compiscript/compiscript/internal/lexer"
	"github.com/compiscript/compiscript/internal/parser"
	"github.com/compiscript/compiscript/internal/pipeline"
	"github.com/compiscript/compiscript/internal/prettyprinter"
	"github.com/compiscript/compiscript/internal/symbols"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Result bundles the pipeline outcome with the configuration that
// produced it.
type Result struct {
	Ctx *pipeline.PipelineContext
	Cfg *config.Config
}

// AnalyzeFile reads and analyzes one source file.
func AnalyzeFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadForSource(path)
	if err != nil {
		return nil, err
	}

	return AnalyzeSource(string(source), path, cfg), nil
}

// AnalyzeSource analyzes an in-memory buffer under the given configuration.
func AnalyzeSource(source, path string, cfg *config.Config) *Result {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path

	pipe := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.AnalyzerProcessor{StrictProps: cfg.StrictProps},
	)
	return &Result{Ctx: pipe.Run(ctx), Cfg: cfg}
}

// Report writes the diagnostic list (or the success line) and the symbol
// table, returning the process exit code: 0 when clean, 1 otherwise.
func Report(res *Result, w io.Writer, withTable bool) int {
	colored := useColor(res.Cfg)

	exitCode := 0
	if res.Ctx.HasErrors() {
		exitCode = 1
		fmt.Fprintln(w, "Errores semánticos encontrados:")
		for _, e := range res.Ctx.Errors {
			line := e.Error()
			if colored {
				line = ansiRed + line + ansiReset
			}
			fmt.Fprintf(w, "    %s\n", line)
		}
	} else {
		line := "Análisis semántico completado sin errores."
		if colored {
			line = ansiGreen + line + ansiReset
		}
		fmt.Fprintln(w, line)
	}

	if withTable {
		fmt.Fprintln(w)
		root := rootScope(res)
		fmt.Fprint(w, prettyprinter.PrintSymbolTable(root))
	}
	return exitCode
}

// PrintSymbolTable writes only the symbol table.
func PrintSymbolTable(res *Result, w io.Writer) {
	fmt.Fprint(w, prettyprinter.PrintSymbolTable(rootScope(res)))
}

func rootScope(res *Result) *symbols.Scope {
	if res.Ctx.Scopes == nil {
		return nil
	}
	return res.Ctx.Scopes.Root()
}

func useColor(cfg *config.Config) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
