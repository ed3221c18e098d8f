package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/rule"
	"github.com/temporal-IPA/nlu/pkg/spellcheck"
)

// panickingRule always panics from NominateWords, exercising the parser's
// per-rule panic recovery and logging.
type panickingRule struct{}

func (panickingRule) NominateWords(words []*lexer.OptionWord) []rule.Nomination {
	panic("boom")
}

func (panickingRule) Evaluate(words []rule.WordMatch) (float64, bool) {
	return 0, false
}

func buildTokens(t *testing.T, text string) []*lexer.Token {
	t.Helper()

	backend := spellcheck.NewStatic().
		WithStems("j’aime", "aimer").
		WithStems("saucisses", "saucisse")

	lex := lexer.New(locale.NewFrench(), backend)
	norm := lex.Normalize(text)
	toks, err := lex.Tokenize(norm, true)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	return toks
}

func TestNominateSausage(t *testing.T) {
	tokens := buildTokens(t, "j'aime les saucisses")

	p := New([]rule.Info{
		{Name: "sausage", Weight: 1, Rule: rule.NewKeywordSequence("aimer", "saucisse")},
	})

	interps, err := p.Nominate(tokens)
	if err != nil {
		t.Fatalf("Nominate returned error: %v", err)
	}
	if len(interps) != len(tokens) {
		t.Fatalf("Nominate returned %d interpretations, want %d", len(interps), len(tokens))
	}

	var sawAime, sawSaucisses bool
	for _, interp := range interps {
		for _, tuple := range interp.Nominations {
			for _, wm := range tuple {
				nom, ok := wm.(*rule.Nomination)
				if !ok {
					continue
				}
				switch nom.Word.WordLower {
				case "aimer":
					sawAime = true
				case "saucisse":
					sawSaucisses = true
				}
			}
		}
	}

	if !sawAime {
		t.Errorf("no interpretation nominated the aimer stem")
	}
	if !sawSaucisses {
		t.Errorf("no interpretation nominated the saucisse stem")
	}
}

func TestNominateIndependentSlotsDoNotAlias(t *testing.T) {
	tokens := buildTokens(t, "saucisses")

	p := New([]rule.Info{
		{Name: "sausage", Weight: 1, Rule: rule.NewKeywordSequence("aimer", "saucisse")},
	})

	interps, err := p.Nominate(tokens)
	if err != nil {
		t.Fatalf("Nominate returned error: %v", err)
	}

	// Every surviving tuple must have exactly one slot (options here all
	// have exactly one word).
	for _, tuple := range interps[0].Nominations {
		if len(tuple) != 1 {
			t.Fatalf("tuple has %d slots, want 1 (aliasing bug?): %v", len(tuple), tuple)
		}
	}

	// Only the stem option's word is nominated, so exactly one tuple
	// survives; a nomination leaking into the verbatim option's slot would
	// add a duplicate tuple.
	if len(interps[0].Nominations) != 1 {
		t.Fatalf("got %d surviving tuples, want 1 (nomination leaked across options?): %v", len(interps[0].Nominations), interps[0].Nominations)
	}
}

func TestNominateEmptyWhenAllNoMatch(t *testing.T) {
	tokens := buildTokens(t, "les")

	p := New([]rule.Info{
		{Name: "sausage", Weight: 1, Rule: rule.NewKeywordSequence("aimer", "saucisse")},
	})

	interps, err := p.Nominate(tokens)
	if err != nil {
		t.Fatalf("Nominate returned error: %v", err)
	}
	if len(interps[0].Nominations) != 0 {
		t.Errorf("Nominations = %v, want empty (no rule nominates this token)", interps[0].Nominations)
	}
}

func TestNominateRulePanicLogsErrorAndReturnsRuleError(t *testing.T) {
	tokens := buildTokens(t, "saucisses")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := New([]rule.Info{
		{Name: "broken", Weight: 1, Rule: panickingRule{}},
	})
	p.Logger = logger

	if _, err := p.Nominate(tokens); err == nil {
		t.Fatalf("Nominate returned no error for a panicking rule")
	}

	out := buf.String()
	if !strings.Contains(out, "rule panic recovered") {
		t.Errorf("log output = %q, want a record mentioning the recovered panic", out)
	}
	if !strings.Contains(out, "broken") {
		t.Errorf("log output = %q, want the panicking rule's name", out)
	}
}
