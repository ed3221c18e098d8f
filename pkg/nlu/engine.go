// Package nlu exposes the single public entry point that wires the lexer,
// parser and optimizer into one interpretation call.
package nlu

import (
	"context"
	"log/slog"

	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/optimizer"
	"github.com/temporal-IPA/nlu/pkg/parser"
	"github.com/temporal-IPA/nlu/pkg/rule"
)

// Engine wires the three pipeline stages behind a single Parse call.
type Engine struct {
	Lexer     *lexer.Lexer
	Parser    *parser.Parser
	Minimizer optimizer.Minimizer

	// Logger is threaded into the Lexer and Parser and passed to
	// optimizer.Optimize, so backend failures, rule panics and minimizer
	// fallbacks across the whole pipeline share one sink. Nil disables
	// logging.
	Logger *slog.Logger
}

// New builds an Engine over the given lexer, rule ensemble and minimizer.
// logger is threaded into lex and the newly built Parser; pass nil to
// disable logging.
func New(lex *lexer.Lexer, rules []rule.Info, m optimizer.Minimizer, logger *slog.Logger) *Engine {
	p := parser.New(rules)
	lex.Logger = logger
	p.Logger = logger
	return &Engine{Lexer: lex, Parser: p, Minimizer: m, Logger: logger}
}

// Parse runs Lexer.Process, then Parser.Nominate, then optimizer.Optimize,
// returning the best-scoring Match for text.
//
// ctx is checked between stages only: Parse performs no internal timeout
// or deadline logic of its own, it just gives a caller that wrapped the
// call in a context a place to observe cancellation without leaking a
// goroutine around the whole pipeline.
func (e *Engine) Parse(ctx context.Context, text string) (optimizer.Match, error) {
	if err := ctx.Err(); err != nil {
		return optimizer.Match{}, err
	}

	tokens, err := e.Lexer.Process(text)
	if err != nil {
		return optimizer.Match{}, err
	}

	if err := ctx.Err(); err != nil {
		return optimizer.Match{}, err
	}

	interps, err := e.Parser.Nominate(tokens)
	if err != nil {
		return optimizer.Match{}, err
	}

	if err := ctx.Err(); err != nil {
		return optimizer.Match{}, err
	}

	return optimizer.Optimize(interps, e.Parser.Rules, e.Minimizer, e.Logger), nil
}
