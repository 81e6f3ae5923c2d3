package analyzer

import (
	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/pipeline"
)

// AnalyzerProcessor is the pipeline stage that runs semantic analysis over
// the parsed program and records its diagnostics in the context.
type AnalyzerProcessor struct {
	// StrictProps enables E_PROP_UNDEF for unknown property accesses.
	StrictProps bool
}

func (ap *AnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}

	reporter := diagnostics.NewReporter()
	a := New(reporter)
	a.SetStrictProps(ap.StrictProps)
	a.Analyze(program)

	ctx.Scopes = a.Scopes()
	for _, err := range reporter.Errors() {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
