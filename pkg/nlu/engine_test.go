package nlu

import (
	"context"
	"testing"

	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/optimizer"
	"github.com/temporal-IPA/nlu/pkg/rule"
	"github.com/temporal-IPA/nlu/pkg/spellcheck"
)

func sausageEngine() *Engine {
	backend := spellcheck.NewStatic().
		WithStems("j’aime", "aimer").
		WithStems("n’aime", "aimer").
		WithStems("aimons", "aimer").
		WithStems("saucisses", "saucisse").
		WithStems("bonnes", "bonne")

	lex := lexer.New(locale.NewFrench(), backend)

	rules := []rule.Info{
		{Name: "sausage", Weight: 1.0, Rule: rule.NewKeywordSequence("aimer", "saucisse")},
		{Name: "max-match", Weight: 1.0, Rule: rule.MaximizeMatch{}},
		{Name: "max-similarity", Weight: 1.0, Rule: rule.MaximizeSimilarity{}},
	}

	return New(lex, rules, optimizer.MultiStartCoordinateDescent{Seed: 1}, nil)
}

func TestEngineParseSausageMatchScoresHigh(t *testing.T) {
	match, err := sausageEngine().Parse(context.Background(), "j'aime les saucisses")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if match.Score <= 0.8 {
		t.Errorf("Score = %v, want > 0.8", match.Score)
	}
}

func TestEngineParseNoKeywordsScoresZero(t *testing.T) {
	match, err := sausageEngine().Parse(context.Background(), "j'aime les bananes")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", match.Score)
	}
}

func TestEngineParseWrongOrderScoresZero(t *testing.T) {
	match, err := sausageEngine().Parse(context.Background(), "les saucisses je n'aime pas du tout")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", match.Score)
	}
}

func TestEngineParseEmptyText(t *testing.T) {
	match, err := sausageEngine().Parse(context.Background(), "")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0 for empty text", match.Score)
	}
}

func TestEngineParseHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sausageEngine().Parse(ctx, "j'aime les saucisses")
	if err == nil {
		t.Errorf("expected an error from an already-cancelled context")
	}
}
