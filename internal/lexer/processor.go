package lexer

import (
	"github.com/compiscript/compiscript/internal/pipeline"
	"github.com/compiscript/compiscript/internal/token"
)

type bufferedLexer struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

// NewTokenStream wraps a Lexer in a buffered pipeline.TokenStream.
func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		tok := bl.buffer[bl.pos]
		bl.pos++
		return tok
	}
	return bl.l.NextToken()
}

func (bl *bufferedLexer) Peek(n int) []token.Token {
	for len(bl.buffer)-bl.pos < n {
		tok := bl.l.NextToken()
		bl.buffer = append(bl.buffer, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}
	return bl.buffer[bl.pos:end]
}

// LexerProcessor is the pipeline stage that turns source text into a token
// stream for the parser.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = NewTokenStream(New(ctx.SourceCode))
	return ctx
}
