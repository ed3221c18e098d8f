package optimizer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/parser"
	"github.com/temporal-IPA/nlu/pkg/rule"
	"github.com/temporal-IPA/nlu/pkg/spellcheck"
)

func sausageRules() []rule.Info {
	return []rule.Info{
		{Name: "sausage", Weight: 1.0, Rule: rule.NewKeywordSequence("aimer", "saucisse")},
		{Name: "max-match", Weight: 1.0, Rule: rule.MaximizeMatch{}},
		{Name: "max-similarity", Weight: 1.0, Rule: rule.MaximizeSimilarity{}},
	}
}

func sausageBackend() *spellcheck.Static {
	return spellcheck.NewStatic().
		WithStems("j’aime", "aimer").
		WithStems("n’aime", "aimer").
		WithStems("aimons", "aimer").
		WithStems("saucisses", "saucisse").
		WithStems("bonnes", "bonne")
}

func parseFixture(t *testing.T, text string) ([]*lexer.Token, []parser.Interpretation) {
	t.Helper()

	lex := lexer.New(locale.NewFrench(), sausageBackend())
	norm := lex.Normalize(text)
	toks, err := lex.Tokenize(norm, true)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	p := parser.New(sausageRules())
	interps, err := p.Nominate(toks)
	if err != nil {
		t.Fatalf("Nominate returned error: %v", err)
	}

	return toks, interps
}

func defaultMinimizer() Minimizer {
	return MultiStartCoordinateDescent{Seed: 1}
}

func TestOptimizeSausageMatchScoresHigh(t *testing.T) {
	_, interps := parseFixture(t, "j'aime les saucisses")

	match := Optimize(interps, sausageRules(), defaultMinimizer(), nil)
	if match.Score <= 0.8 {
		t.Errorf("Score = %v, want > 0.8", match.Score)
	}
}

func TestOptimizeNoKeywordsScoresZero(t *testing.T) {
	_, interps := parseFixture(t, "j'aime les bananes")

	match := Optimize(interps, sausageRules(), defaultMinimizer(), nil)
	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", match.Score)
	}
}

func TestOptimizeWrongOrderScoresZero(t *testing.T) {
	_, interps := parseFixture(t, "les saucisses je n'aime pas du tout")

	match := Optimize(interps, sausageRules(), defaultMinimizer(), nil)
	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", match.Score)
	}
}

func TestOptimizeGapScoresModerate(t *testing.T) {
	_, interps := parseFixture(t, "nous aimons les bonnes saucisses")

	match := Optimize(interps, sausageRules(), defaultMinimizer(), nil)
	if match.Score <= 0.5 {
		t.Errorf("Score = %v, want > 0.5", match.Score)
	}
}

func TestOptimizeScoreBounded(t *testing.T) {
	for _, text := range []string{
		"j'aime les saucisses",
		"j'aime les bananes",
		"",
	} {
		_, interps := parseFixture(t, text)
		match := Optimize(interps, sausageRules(), defaultMinimizer(), nil)
		if match.Score < 0 || match.Score > 1 {
			t.Errorf("Optimize(%q).Score = %v, out of [0,1]", text, match.Score)
		}
	}
}

func TestOptimizeEmptyInterpretations(t *testing.T) {
	match := Optimize(nil, sausageRules(), defaultMinimizer(), nil)
	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0 for no interpretations", match.Score)
	}
}

// failingMinimizer always reports failure, exercising Optimize's
// all-NoMatch fallback and its logging.
type failingMinimizer struct{}

func (failingMinimizer) Minimize(f func([]float64) float64, bounds []Bound) (bool, []float64, float64) {
	return false, nil, 0
}

func TestOptimizeMinimizerFailureLogsWarnAndFallsBack(t *testing.T) {
	_, interps := parseFixture(t, "j'aime les saucisses")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	match := Optimize(interps, sausageRules(), failingMinimizer{}, logger)

	if match.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0 on minimizer failure", match.Score)
	}
	for _, wm := range match.Matched {
		if _, ok := wm.(rule.NoMatch); !ok {
			t.Errorf("Matched entry %#v is not NoMatch", wm)
		}
	}

	if !strings.Contains(buf.String(), "minimizer failed") {
		t.Errorf("log output = %q, want a record mentioning minimizer failure", buf.String())
	}
}
