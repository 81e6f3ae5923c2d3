package parser

import (
	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/pipeline"
	"github.com/compiscript/compiscript/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		err := diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP001, token.Token{},
			"token stream", "nada")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	program := parser.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
